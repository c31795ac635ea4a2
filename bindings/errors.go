package bindings

import (
	"errors"
	"fmt"
)

// Sentinel errors for binding files.
var (
	// ErrUnknownKey is returned when a binding names a key missing from
	// the static table.
	ErrUnknownKey = errors.New("unknown key name")

	// ErrMissingAction is returned when a binding has no action.
	ErrMissingAction = errors.New("binding has no action")

	// ErrInvalidOn is returned for an unrecognized "on" value.
	ErrInvalidOn = errors.New(`"on" must be "press", "release", or "both"`)
)

// ParseError reports a rejected binding entry.
type ParseError struct {
	// Index is the zero-based position of the binding in the file.
	Index int

	// Key is the key field as written.
	Key string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("binding %d (key %q): %v", e.Index, e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
