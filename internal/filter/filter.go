// Package filter provides composable boolean predicates over close
// approaches for the database query engine.
//
// A Predicate sees a single linked approach and decides whether it
// matches. The query engine treats predicates as opaque: it only composes
// them with logical AND, short-circuiting on the first false. Predicates
// must be pure and deterministic so repeated queries over the same
// database yield identical streams.
package filter

import (
	"time"

	"github.com/orrery/neowatch/internal/neo"
)

// Predicate reports whether a close approach matches one criterion. The
// approach is always linked, so implementations may reach through
// a.Neo without a nil check.
type Predicate func(a *neo.Approach) bool

// Set is a collection of named predicates combined with logical AND.
// A nil or empty Set matches every approach.
type Set map[string]Predicate

// Matches reports whether every predicate in the set accepts the
// approach. Evaluation stops at the first predicate that rejects it.
func (s Set) Matches(a *neo.Approach) bool {
	for _, p := range s {
		if !p(a) {
			return false
		}
	}
	return true
}

// OnDate matches approaches whose time falls on the given calendar date.
// Approaches with no recorded time never match a date filter.
func OnDate(d time.Time) Predicate {
	return func(a *neo.Approach) bool {
		return a.Time != nil && sameDate(*a.Time, d)
	}
}

// StartDate matches approaches occurring on or after the given date.
func StartDate(d time.Time) Predicate {
	bound := dateOf(d)
	return func(a *neo.Approach) bool {
		return a.Time != nil && !dateOf(*a.Time).Before(bound)
	}
}

// EndDate matches approaches occurring on or before the given date.
func EndDate(d time.Time) Predicate {
	bound := dateOf(d)
	return func(a *neo.Approach) bool {
		return a.Time != nil && !dateOf(*a.Time).After(bound)
	}
}

// MinDistance matches approaches at or beyond the given distance in au.
// Approaches with unknown distance never match a distance bound.
func MinDistance(v float64) Predicate {
	return func(a *neo.Approach) bool {
		return a.Distance != nil && *a.Distance >= v
	}
}

// MaxDistance matches approaches at or within the given distance in au.
func MaxDistance(v float64) Predicate {
	return func(a *neo.Approach) bool {
		return a.Distance != nil && *a.Distance <= v
	}
}

// MinVelocity matches approaches at or above the given velocity in km/s.
// Approaches with unknown velocity never match a velocity bound.
func MinVelocity(v float64) Predicate {
	return func(a *neo.Approach) bool {
		return a.Velocity != nil && *a.Velocity >= v
	}
}

// MaxVelocity matches approaches at or below the given velocity in km/s.
func MaxVelocity(v float64) Predicate {
	return func(a *neo.Approach) bool {
		return a.Velocity != nil && *a.Velocity <= v
	}
}

// MinDiameter matches approaches of NEOs at least the given diameter in
// kilometers. NEOs with unknown diameter never match a diameter bound.
func MinDiameter(v float64) Predicate {
	return func(a *neo.Approach) bool {
		return a.Neo.Diameter != nil && *a.Neo.Diameter >= v
	}
}

// MaxDiameter matches approaches of NEOs at most the given diameter in
// kilometers.
func MaxDiameter(v float64) Predicate {
	return func(a *neo.Approach) bool {
		return a.Neo.Diameter != nil && *a.Neo.Diameter <= v
	}
}

// Hazardous matches approaches of NEOs whose hazard classification is
// present and equal to want. An unclassified NEO matches neither
// Hazardous(true) nor Hazardous(false).
func Hazardous(want bool) Predicate {
	return func(a *neo.Approach) bool {
		return a.Neo.Hazardous != nil && *a.Neo.Hazardous == want
	}
}

// Designation matches approaches of the NEO with the given primary
// designation, exactly.
func Designation(des string) Predicate {
	return func(a *neo.Approach) bool {
		return a.Neo.Designation == des
	}
}

// Name matches approaches of the NEO with the given IAU name, exactly.
// Unnamed NEOs never match, including for the empty string.
func Name(name string) Predicate {
	return func(a *neo.Approach) bool {
		return name != "" && a.Neo.Name != nil && *a.Neo.Name == name
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
