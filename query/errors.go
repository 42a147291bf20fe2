package query

import (
	"errors"
	"fmt"
)

// ErrEmptyGroup is returned for an AND/OR group without members, which has no
// SQL form.
var ErrEmptyGroup = errors.New("empty expression group")

// UnsupportedCommandError is returned when rendering a command that has no
// grammar yet.
type UnsupportedCommandError struct {
	Command Command
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("unsupported command: %s", e.Command)
}

type InvalidOrderDirectionError struct {
	Field string
	Value Direction
}

func (e *InvalidOrderDirectionError) Error() string {
	return fmt.Sprintf("invalid order direction for field %s: %q (must be ASC or DESC)", e.Field, string(e.Value))
}

// InvalidLimitError is returned when LIMIT or OFFSET is negative.
type InvalidLimitError struct {
	Clause string
	Value  int64
}

func (e *InvalidLimitError) Error() string {
	return fmt.Sprintf("invalid %s: %d (must not be negative)", e.Clause, e.Value)
}
