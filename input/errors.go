package input

import "errors"

// Sentinel errors for the input package.
var (
	// ErrNoSurface is returned when an operation requires a bound surface
	// and none is set.
	ErrNoSurface = errors.New("no input surface bound")

	// ErrNilHandler is returned when a nil handler is registered.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrInvalidEventType is returned when an event type name is empty.
	ErrInvalidEventType = errors.New("invalid event type")

	// ErrHandlerNotFound is returned when deregistering an unknown handler.
	ErrHandlerNotFound = errors.New("handler not found")
)
