package neo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObject_Fullname(t *testing.T) {
	named := NewObject("433", String("Eros"), Float(16.84), Bool(false))
	assert.Equal(t, "433 Eros", named.Fullname())

	unnamed := NewObject("2020 AB", nil, nil, nil)
	assert.Equal(t, "2020 AB", unnamed.Fullname())
}

func TestObject_Serialize(t *testing.T) {
	o := NewObject("433", String("Eros"), Float(16.84), Bool(false))
	got := o.Serialize()

	assert.Equal(t, "433", got["designation"])
	assert.Equal(t, "Eros", got["name"])
	assert.Equal(t, Float(16.84), got["diameter_km"])
	assert.Equal(t, Bool(false), got["potentially_hazardous"])
}

func TestObject_SerializeUnsetFields(t *testing.T) {
	o := NewObject("2020 AB", nil, nil, nil)
	got := o.Serialize()

	// Unset name flattens to the empty string; unknown diameter and an
	// absent hazard flag stay nil for the writers to spell out.
	assert.Equal(t, "", got["name"])
	assert.Nil(t, got["diameter_km"])
	assert.Nil(t, got["potentially_hazardous"])
}

func TestObject_String(t *testing.T) {
	hazardous := NewObject("433", String("Eros"), Float(16.84), Bool(true))
	assert.Equal(t,
		"NEO 433 Eros has a diameter of 16.840 km and is potentially hazardous.",
		hazardous.String())

	unknown := NewObject("2020 AB", nil, nil, nil)
	assert.Equal(t,
		"NEO 2020 AB has an unknown diameter and has no hazard classification.",
		unknown.String())
}

func TestApproach_Designation(t *testing.T) {
	a := NewApproach("433", nil, nil, nil)
	assert.Equal(t, "433", a.Designation())
}

func TestApproach_TimeString(t *testing.T) {
	at := time.Date(1900, time.December, 27, 1, 30, 0, 0, time.UTC)
	a := NewApproach("433", Time(at), Float(0.3), Float(5.1))
	assert.Equal(t, "1900-12-27 01:30", a.TimeString())

	unset := NewApproach("433", nil, nil, nil)
	assert.Equal(t, "", unset.TimeString())
}

func TestApproach_Serialize(t *testing.T) {
	at := time.Date(1900, time.December, 27, 1, 30, 0, 0, time.UTC)
	a := NewApproach("433", Time(at), Float(0.3), Float(5.1))
	got := a.Serialize()

	assert.Equal(t, "1900-12-27 01:30", got["datetime_utc"])
	assert.Equal(t, Float(0.3), got["distance_au"])
	assert.Equal(t, Float(5.1), got["velocity_km_s"])
}

func TestApproach_String(t *testing.T) {
	at := time.Date(1900, time.December, 27, 1, 30, 0, 0, time.UTC)
	a := NewApproach("433", Time(at), Float(0.3), Float(5.1))
	a.Neo = NewObject("433", String("Eros"), Float(16.84), Bool(false))
	assert.Equal(t,
		"At 1900-12-27 01:30, 433 Eros approaches Earth at a distance of 0.30 au with a velocity of 5.10 km/s.",
		a.String())
}

func TestApproach_StringUnsetFields(t *testing.T) {
	// Unlinked approach with nothing recorded falls back to the
	// designation and the unknown phrasings.
	a := NewApproach("433", nil, nil, nil)
	assert.Equal(t,
		"At an unknown time, 433 approaches Earth at an unknown distance with an unknown velocity.",
		a.String())
}
