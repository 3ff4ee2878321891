package neo

import (
	"fmt"
	"strconv"
)

// Object is a near-Earth object: its primary designation (required,
// unique), optional IAU name, optional diameter in kilometers, and a
// potentially-hazardous flag.
type Object struct {
	// Designation is the primary designation, the unique key for the
	// object across the whole data set.
	Designation string

	// Name is the IAU name, nil when the object is unnamed.
	Name *string

	// Diameter is the diameter in kilometers, nil when unknown.
	Diameter *float64

	// Hazardous reports whether the object is classified as potentially
	// hazardous. nil when the source data carries no classification.
	Hazardous *bool

	// Approaches holds this object's close approaches in the order the
	// database linked them. Empty until db.New runs; read-only after.
	Approaches []*Approach
}

// NewObject builds an unlinked Object. Every field is supplied
// explicitly; optional fields are nil pointers, not sentinel values.
func NewObject(designation string, name *string, diameter *float64, hazardous *bool) *Object {
	return &Object{
		Designation: designation,
		Name:        name,
		Diameter:    diameter,
		Hazardous:   hazardous,
	}
}

// Fullname returns the human-readable identifier: the designation alone
// for unnamed objects, otherwise "designation name".
func (o *Object) Fullname() string {
	if o.Name != nil {
		return o.Designation + " " + *o.Name
	}
	return o.Designation
}

// Serialize returns the flat export view of the object. The name is the
// empty string when unset; diameter and hazardous keep their nil-ness so
// the writers can apply per-format conventions.
func (o *Object) Serialize() map[string]any {
	name := ""
	if o.Name != nil {
		name = *o.Name
	}
	return map[string]any{
		"designation":           o.Designation,
		"name":                  name,
		"diameter_km":           o.Diameter,
		"potentially_hazardous": o.Hazardous,
	}
}

// String implements fmt.Stringer for display output.
func (o *Object) String() string {
	diameter := "an unknown diameter"
	if o.Diameter != nil {
		diameter = "a diameter of " + strconv.FormatFloat(*o.Diameter, 'f', 3, 64) + " km"
	}
	hazard := "has no hazard classification"
	if o.Hazardous != nil {
		if *o.Hazardous {
			hazard = "is potentially hazardous"
		} else {
			hazard = "is not potentially hazardous"
		}
	}
	return fmt.Sprintf("NEO %s has %s and %s.", o.Fullname(), diameter, hazard)
}
