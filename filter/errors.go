package filter

import (
	"errors"
	"fmt"
)

// ErrNilPredicate is returned by Replay when no predicate is given.
var ErrNilPredicate = errors.New("filter: predicate is nil")

// MalformedPredicateError is returned when replaying a predicate never reaches a
// pass that returns true.
type MalformedPredicateError struct {
	Table    string
	Attempts int
	Slots    int
}

func (e *MalformedPredicateError) Error() string {
	return fmt.Sprintf("malformed predicate on %s: no true pass after %d attempts (%d slots)", e.Table, e.Attempts, e.Slots)
}

// UnknownColumnError is returned when a column is not part of the entity.
type UnknownColumnError struct {
	Table  string
	Column string
}

func (e *UnknownColumnError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("unknown column: %s", e.Column)
	}
	return fmt.Sprintf("unknown column: %s.%s", e.Table, e.Column)
}
