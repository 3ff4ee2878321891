package filter

import (
	"errors"
	"fmt"
	"time"
)

// Criteria is the parsed form of user-specified query criteria, as
// gathered from CLI flags or a preset file. nil fields are "not given".
type Criteria struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time

	MinDistance *float64
	MaxDistance *float64
	MinVelocity *float64
	MaxVelocity *float64
	MinDiameter *float64
	MaxDiameter *float64

	Hazardous *bool

	Designation *string
	Name        *string
}

// BoundsError reports a criteria pair whose lower bound exceeds its
// upper bound, which would silently match nothing.
type BoundsError struct {
	Field  string
	Detail string
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("invalid %s bounds: %s", e.Field, e.Detail)
}

// IsBoundsError reports whether err is a BoundsError, unwrapping as
// needed.
func IsBoundsError(err error) bool {
	var be *BoundsError
	return errors.As(err, &be)
}

// Build translates the criteria into a named predicate set for
// Database.Query. Only supplied criteria contribute predicates; empty
// criteria produce an empty set, which matches everything.
func (c Criteria) Build() (Set, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	set := make(Set)
	if c.Date != nil {
		set["date"] = OnDate(*c.Date)
	}
	if c.StartDate != nil {
		set["start_date"] = StartDate(*c.StartDate)
	}
	if c.EndDate != nil {
		set["end_date"] = EndDate(*c.EndDate)
	}
	if c.MinDistance != nil {
		set["min_distance"] = MinDistance(*c.MinDistance)
	}
	if c.MaxDistance != nil {
		set["max_distance"] = MaxDistance(*c.MaxDistance)
	}
	if c.MinVelocity != nil {
		set["min_velocity"] = MinVelocity(*c.MinVelocity)
	}
	if c.MaxVelocity != nil {
		set["max_velocity"] = MaxVelocity(*c.MaxVelocity)
	}
	if c.MinDiameter != nil {
		set["min_diameter"] = MinDiameter(*c.MinDiameter)
	}
	if c.MaxDiameter != nil {
		set["max_diameter"] = MaxDiameter(*c.MaxDiameter)
	}
	if c.Hazardous != nil {
		set["hazardous"] = Hazardous(*c.Hazardous)
	}
	if c.Designation != nil {
		set["designation"] = Designation(*c.Designation)
	}
	if c.Name != nil {
		set["name"] = Name(*c.Name)
	}
	return set, nil
}

func (c Criteria) validate() error {
	pairs := []struct {
		field    string
		min, max *float64
	}{
		{"distance", c.MinDistance, c.MaxDistance},
		{"velocity", c.MinVelocity, c.MaxVelocity},
		{"diameter", c.MinDiameter, c.MaxDiameter},
	}
	for _, p := range pairs {
		if p.min != nil && p.max != nil && *p.min > *p.max {
			return &BoundsError{
				Field:  p.field,
				Detail: fmt.Sprintf("min %v exceeds max %v", *p.min, *p.max),
			}
		}
	}
	if c.StartDate != nil && c.EndDate != nil && c.StartDate.After(*c.EndDate) {
		return &BoundsError{Field: "date", Detail: "start date is after end date"}
	}
	return nil
}
