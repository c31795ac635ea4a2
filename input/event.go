package input

import "github.com/dshills/keytap/key"

// EventType names a class of events a Surface delivers.
type EventType string

// Event types delivered by key input surfaces.
const (
	// EventKeyPressed is delivered when a key transitions to the down state.
	EventKeyPressed EventType = "key-pressed"

	// EventKeyReleased is delivered when a key transitions to the up state.
	EventKeyReleased EventType = "key-released"
)

// Event is the minimal payload contract for key events. Surfaces may
// deliver richer event types; consumers only depend on the code.
type Event interface {
	// Code returns the key code that transitioned.
	Code() key.Code
}

// KeyEvent is a plain Event implementation.
type KeyEvent struct {
	KeyCode key.Code
}

// Code returns the key code that transitioned.
func (e KeyEvent) Code() key.Code {
	return e.KeyCode
}
