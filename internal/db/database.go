package db

import (
	"iter"

	"golang.org/x/text/unicode/norm"

	"github.com/orrery/neowatch/internal/filter"
	"github.com/orrery/neowatch/internal/neo"
)

// Database is the linked, indexed view over the two record collections.
// Built once by New, read-only afterwards.
type Database struct {
	neos       []*neo.Object
	approaches []*neo.Approach

	byDesignation map[string]*neo.Object
	// desByName maps NFC-normalized IAU names to designations. Unnamed
	// objects have no entry, so lookups by "" always miss.
	desByName map[string]string
}

// New links the supplied collections and builds the lookup indexes.
//
// Preconditions: the objects are unlinked (empty Approaches) and every
// approach's designation names exactly one object. A duplicate
// designation or an unresolvable foreign key fails construction with a
// typed error; no partially linked database is ever returned.
func New(neos []*neo.Object, approaches []*neo.Approach) (*Database, error) {
	d := &Database{
		neos:          neos,
		approaches:    approaches,
		byDesignation: make(map[string]*neo.Object, len(neos)),
		desByName:     make(map[string]string),
	}

	for _, o := range neos {
		if _, ok := d.byDesignation[o.Designation]; ok {
			return nil, &DuplicateDesignationError{Designation: o.Designation}
		}
		d.byDesignation[o.Designation] = o
		if o.Name != nil && *o.Name != "" {
			d.desByName[nameKey(*o.Name)] = o.Designation
		}
	}

	for i, a := range approaches {
		o, ok := d.byDesignation[a.Designation()]
		if !ok {
			return nil, &UnknownDesignationError{Designation: a.Designation(), Index: i}
		}
		a.Neo = o
		o.Approaches = append(o.Approaches, a)
	}

	return d, nil
}

// NEOByDesignation returns the object with the given primary
// designation, or nil when there is no match. The empty designation
// always misses.
func (d *Database) NEOByDesignation(designation string) *neo.Object {
	if designation == "" {
		return nil
	}
	return d.byDesignation[designation]
}

// NEOByName returns the object with the given IAU name, or nil when
// there is no match. The empty name always misses; no object is named
// the empty string.
func (d *Database) NEOByName(name string) *neo.Object {
	if name == "" {
		return nil
	}
	des, ok := d.desByName[nameKey(name)]
	if !ok {
		return nil
	}
	return d.NEOByDesignation(des)
}

// Query returns a lazy stream of the approaches matching every predicate
// in filters, in original link order. A nil or empty set matches all
// approaches. The stream is produced on demand, so a consumer may stop
// early without the remaining approaches being evaluated; re-invoking
// Query restarts from the beginning.
func (d *Database) Query(filters filter.Set) iter.Seq[*neo.Approach] {
	return func(yield func(*neo.Approach) bool) {
		for _, a := range d.approaches {
			if !filters.Matches(a) {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// NEOs returns the objects in their original input order.
func (d *Database) NEOs() []*neo.Object {
	return d.neos
}

// Approaches returns all approaches in their original input order.
func (d *Database) Approaches() []*neo.Approach {
	return d.approaches
}

// nameKey normalizes a name for index use. Lookups must hit regardless
// of the Unicode composition form the caller typed.
func nameKey(name string) string {
	return norm.NFC.String(name)
}
