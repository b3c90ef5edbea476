package classmap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the parent of every construction-time input error.
	ErrInvalidInput = errors.New("invalid class map input")

	// ErrOutOfMemory is returned when the slot array cannot be reserved.
	ErrOutOfMemory = errors.New("out of memory")
)

// ErrTypeMismatch reports a pair whose key is not a name or whose value is
// not a Member.
//
// errors.Is(err, ErrInvalidInput) holds for every ErrTypeMismatch.
type ErrTypeMismatch struct {
	// Role is "key" or "value".
	Role string
	// Index is the position of the offending pair.
	Index int
	// Got is the rejected key or value.
	Got any
	// Expected names the required capability ("str" or "Member").
	Expected string
}

func (e *ErrTypeMismatch) Error() string {
	return fmt.Sprintf("pair %d: expected %s of type %s, got %T", e.Index, e.Role, e.Expected, e.Got)
}

func (e *ErrTypeMismatch) Unwrap() error { return ErrInvalidInput }

// ErrDuplicateName reports a name that occurs more than once in the input.
type ErrDuplicateName struct {
	Name  string
	Index int
}

func (e *ErrDuplicateName) Error() string {
	return fmt.Sprintf("pair %d: duplicate member name %q", e.Index, e.Name)
}

func (e *ErrDuplicateName) Unwrap() error { return ErrInvalidInput }
