package db

import (
	"errors"
	"fmt"
)

// DuplicateDesignationError reports two objects carrying the same
// primary designation. Designations are the primary key of the data set,
// so construction fails rather than letting one record shadow the other.
type DuplicateDesignationError struct {
	Designation string
}

func (e *DuplicateDesignationError) Error() string {
	return fmt.Sprintf("duplicate NEO designation %q", e.Designation)
}

// UnknownDesignationError reports an approach whose foreign key matches
// no object. Partial linking would leave the database inconsistent, so
// construction fails instead of dropping the record.
type UnknownDesignationError struct {
	Designation string
	Index       int // position of the approach in the input collection
}

func (e *UnknownDesignationError) Error() string {
	return fmt.Sprintf("close approach %d references unknown NEO designation %q", e.Index, e.Designation)
}

// IsDuplicateDesignation reports whether err is a
// DuplicateDesignationError, unwrapping as needed.
func IsDuplicateDesignation(err error) bool {
	var de *DuplicateDesignationError
	return errors.As(err, &de)
}

// IsUnknownDesignation reports whether err is an
// UnknownDesignationError, unwrapping as needed.
func IsUnknownDesignation(err error) bool {
	var ue *UnknownDesignationError
	return errors.As(err, &ue)
}
