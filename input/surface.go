package input

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/keytap/key"
)

// Handler receives events from a Surface.
type Handler func(Event)

// HandlerID is an opaque handle identifying a registered handler.
type HandlerID string

// Surface is an event source delivering named events to registered
// handlers. The default surface is the process-wide Emitter returned by
// Default; UI adapters (terminal, evdev) provide their own.
type Surface interface {
	// AddHandler registers a handler for an event type and returns a
	// handle for later removal.
	AddHandler(t EventType, h Handler) (HandlerID, error)

	// RemoveHandler deregisters a previously registered handler.
	RemoveHandler(t EventType, id HandlerID) error
}

// Emitter is an in-process Surface. Handlers for an event type are
// invoked in registration order. Emitter is safe for concurrent use, but
// delivery of a single event runs synchronously on the calling goroutine.
type Emitter struct {
	mu       sync.RWMutex
	handlers map[EventType][]emitterHandler
}

type emitterHandler struct {
	id HandlerID
	fn Handler
}

// NewEmitter creates an empty Emitter.
func NewEmitter() *Emitter {
	return &Emitter{
		handlers: make(map[EventType][]emitterHandler),
	}
}

// AddHandler registers a handler for an event type.
func (e *Emitter) AddHandler(t EventType, h Handler) (HandlerID, error) {
	if t == "" {
		return "", ErrInvalidEventType
	}
	if h == nil {
		return "", ErrNilHandler
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	id := HandlerID(uuid.NewString())
	e.handlers[t] = append(e.handlers[t], emitterHandler{id: id, fn: h})
	return id, nil
}

// RemoveHandler deregisters a handler by ID.
func (e *Emitter) RemoveHandler(t EventType, id HandlerID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	handlers := e.handlers[t]
	for i, h := range handlers {
		if h.id == id {
			e.handlers[t] = append(handlers[:i], handlers[i+1:]...)
			if len(e.handlers[t]) == 0 {
				delete(e.handlers, t)
			}
			return nil
		}
	}
	return ErrHandlerNotFound
}

// Emit delivers an event to every handler registered for the type, in
// registration order. The handler list is copied before iterating, so
// handlers may register or deregister during delivery.
func (e *Emitter) Emit(t EventType, ev Event) {
	e.mu.RLock()
	handlers := e.handlers[t]
	snapshot := make([]Handler, len(handlers))
	for i, h := range handlers {
		snapshot[i] = h.fn
	}
	e.mu.RUnlock()

	for _, fn := range snapshot {
		fn(ev)
	}
}

// EmitPress delivers a key-pressed event for a code.
func (e *Emitter) EmitPress(code key.Code) {
	e.Emit(EventKeyPressed, KeyEvent{KeyCode: code})
}

// EmitRelease delivers a key-released event for a code.
func (e *Emitter) EmitRelease(code key.Code) {
	e.Emit(EventKeyReleased, KeyEvent{KeyCode: code})
}

// HandlerCount returns the number of handlers registered for a type.
func (e *Emitter) HandlerCount(t EventType) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.handlers[t])
}

// defaultSurface is the process-wide surface used by registries that are
// not bound to an explicit surface.
var defaultSurface = NewEmitter()

// Default returns the process-wide Emitter.
func Default() *Emitter {
	return defaultSurface
}
