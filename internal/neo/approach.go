package neo

import (
	"fmt"
	"time"
)

// TimeLayout is the minute-precision layout used for display and export.
// The source data has no seconds, so none are shown.
const TimeLayout = "2006-01-02 15:04"

// Approach is a single recorded close approach to Earth by an NEO: the
// approach time (timezone-naive UTC), the nominal distance in
// astronomical units and the relative velocity in km/s.
type Approach struct {
	// designation is the foreign key naming the approaching NEO. It is
	// fixed at construction; once the database links the approach the
	// resolved object is reachable through Neo.
	designation string

	// Time is the UTC time of closest approach, nil when unset.
	Time *time.Time

	// Distance is the nominal approach distance in au, nil when unknown.
	Distance *float64

	// Velocity is the relative velocity in km/s, nil when unknown.
	Velocity *float64

	// Neo is the linked near-Earth object. nil until db.New resolves the
	// designation; never reassigned afterwards.
	Neo *Object
}

// NewApproach builds an unlinked Approach carrying the designation of the
// NEO it belongs to.
func NewApproach(designation string, t *time.Time, distance, velocity *float64) *Approach {
	return &Approach{
		designation: designation,
		Time:        t,
		Distance:    distance,
		Velocity:    velocity,
	}
}

// Designation returns the foreign-key designation the approach was
// constructed with. Read-only: linking resolves it, nothing rewrites it.
func (a *Approach) Designation() string {
	return a.designation
}

// TimeString returns the approach time at minute precision, or the empty
// string when the time is unset.
func (a *Approach) TimeString() string {
	if a.Time == nil {
		return ""
	}
	return a.Time.Format(TimeLayout)
}

// Serialize returns the flat export view of the approach. NEO fields are
// merged in by the writers, not here.
func (a *Approach) Serialize() map[string]any {
	return map[string]any{
		"datetime_utc":  a.TimeString(),
		"distance_au":   a.Distance,
		"velocity_km_s": a.Velocity,
	}
}

// String implements fmt.Stringer for display output.
func (a *Approach) String() string {
	when := "an unknown time"
	if a.Time != nil {
		when = a.TimeString()
	}
	who := a.designation
	if a.Neo != nil {
		who = a.Neo.Fullname()
	}
	distance := "an unknown distance"
	if a.Distance != nil {
		distance = fmt.Sprintf("a distance of %.2f au", *a.Distance)
	}
	velocity := "an unknown velocity"
	if a.Velocity != nil {
		velocity = fmt.Sprintf("a velocity of %.2f km/s", *a.Velocity)
	}
	return fmt.Sprintf("At %s, %s approaches Earth at %s with %s.",
		when, who, distance, velocity)
}
