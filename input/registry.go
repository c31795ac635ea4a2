package input

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dshills/keytap/key"
)

// Callback is a zero-argument listener callback. Identity for removal is
// function pointer identity: passing the same function value to
// AddListener and RemoveListener matches.
type Callback func()

// Notify selects which transitions a listener receives.
type Notify uint8

const (
	// NotifyPress delivers key-down transitions.
	NotifyPress Notify = 1 << iota

	// NotifyRelease delivers key-up transitions.
	NotifyRelease
)

// NotifyBoth delivers both transitions.
const NotifyBoth = NotifyPress | NotifyRelease

// String returns a human-readable name for the notify mask.
func (n Notify) String() string {
	switch n {
	case NotifyPress:
		return "press"
	case NotifyRelease:
		return "release"
	case NotifyBoth:
		return "both"
	default:
		return "none"
	}
}

// listenerEntry is a registered (key code, callback) pair awaiting a
// matching transition.
type listenerEntry struct {
	code key.Code
	cb   Callback
	ptr  uintptr
}

// callbackPtr returns the identity used to match callbacks on removal.
func callbackPtr(cb Callback) uintptr {
	return reflect.ValueOf(cb).Pointer()
}

// Registry tracks live key state and invokes registered callbacks exactly
// once per genuine key transition on the currently bound surface.
//
// Registry is safe for concurrent use. Dispatch iterates a snapshot of the
// matching callbacks, so listeners may add or remove listeners from inside
// a callback; the change takes effect from the next event. Panics raised
// by a callback are not recovered and abort dispatch to later listeners
// for that event.
type Registry struct {
	mu sync.Mutex

	// Bound surface and handler registrations while subscribed.
	surface    Surface
	pressID    HandlerID
	releaseID  HandlerID
	subscribed bool

	// Live key state. Missing entries are released.
	pressed map[key.Code]bool

	// Ordered listener lists. Insertion order defines dispatch order.
	pressList   []listenerEntry
	releaseList []listenerEntry

	log zerolog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithSurface binds the registry to a surface other than the default.
func WithSurface(s Surface) Option {
	return func(r *Registry) {
		r.surface = s
	}
}

// WithLogger sets the diagnostic logger. The default discards output.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// NewRegistry creates a registry bound to the default surface. The
// registry does not receive events until Subscribe is called.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		surface: Default(),
		pressed: make(map[key.Code]bool),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Subscribe attaches the internal press and release handlers to the bound
// surface. Calling Subscribe while already subscribed is a no-op.
func (r *Registry) Subscribe() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attachLocked()
}

func (r *Registry) attachLocked() error {
	if r.subscribed {
		return nil
	}
	if r.surface == nil {
		return ErrNoSurface
	}

	pressID, err := r.surface.AddHandler(EventKeyPressed, r.handlePress)
	if err != nil {
		return fmt.Errorf("attach press handler: %w", err)
	}
	releaseID, err := r.surface.AddHandler(EventKeyReleased, r.handleRelease)
	if err != nil {
		_ = r.surface.RemoveHandler(EventKeyPressed, pressID)
		return fmt.Errorf("attach release handler: %w", err)
	}

	r.pressID = pressID
	r.releaseID = releaseID
	r.subscribed = true
	return nil
}

// Unsubscribe detaches the internal handlers from the bound surface. Safe
// to call when not subscribed.
func (r *Registry) Unsubscribe() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detachLocked()
	return nil
}

func (r *Registry) detachLocked() {
	if !r.subscribed {
		return
	}
	if err := r.surface.RemoveHandler(EventKeyPressed, r.pressID); err != nil {
		r.log.Warn().Err(err).Msg("detach press handler")
	}
	if err := r.surface.RemoveHandler(EventKeyReleased, r.releaseID); err != nil {
		r.log.Warn().Err(err).Msg("detach release handler")
	}
	r.subscribed = false
}

// Rebind switches the registry to a new surface and subscribes to it,
// detaching from the previous surface. The new surface is attached before
// the old binding is released, so on failure the previous binding stays
// live and untouched; the error is logged and returned.
func (r *Registry) Rebind(s Surface) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s == nil {
		r.log.Error().Err(ErrNoSurface).Msg("rebind failed, keeping current binding")
		return ErrNoSurface
	}

	pressID, err := s.AddHandler(EventKeyPressed, r.handlePress)
	if err != nil {
		err = fmt.Errorf("attach press handler: %w", err)
		r.log.Error().Err(err).Msg("rebind failed, keeping current binding")
		return err
	}
	releaseID, err := s.AddHandler(EventKeyReleased, r.handleRelease)
	if err != nil {
		_ = s.RemoveHandler(EventKeyPressed, pressID)
		err = fmt.Errorf("attach release handler: %w", err)
		r.log.Error().Err(err).Msg("rebind failed, keeping current binding")
		return err
	}

	r.detachLocked()
	r.surface = s
	r.pressID = pressID
	r.releaseID = releaseID
	r.subscribed = true
	return nil
}

// AddListener appends a listener for a key code. The code is not
// validated against the static table, so arbitrary codes are accepted.
// Registering the same (code, callback) pair twice creates independent
// entries. A nil callback or an empty notify mask registers nothing.
func (r *Registry) AddListener(cb Callback, code key.Code, on Notify) {
	if cb == nil {
		r.log.Warn().Stringer("key", code).Msg("nil callback not registered")
		return
	}

	entry := listenerEntry{code: code, cb: cb, ptr: callbackPtr(cb)}

	r.mu.Lock()
	defer r.mu.Unlock()

	if on&NotifyPress != 0 {
		r.pressList = append(r.pressList, entry)
	}
	if on&NotifyRelease != 0 {
		r.releaseList = append(r.releaseList, entry)
	}
}

// RemoveListener removes every entry matching the code and callback from
// the selected lists. A scanned list with no match logs a warning; this
// is diagnostic only, not an error.
func (r *Registry) RemoveListener(cb Callback, code key.Code, on Notify) {
	if cb == nil {
		r.log.Warn().Stringer("key", code).Msg("nil callback not removable")
		return
	}
	ptr := callbackPtr(cb)

	r.mu.Lock()
	defer r.mu.Unlock()

	if on&NotifyPress != 0 {
		var removed int
		r.pressList, removed = removeEntries(r.pressList, code, ptr)
		if removed == 0 {
			r.log.Warn().Stringer("key", code).Str("list", "press").Msg("no matching listener to remove")
		}
	}
	if on&NotifyRelease != 0 {
		var removed int
		r.releaseList, removed = removeEntries(r.releaseList, code, ptr)
		if removed == 0 {
			r.log.Warn().Stringer("key", code).Str("list", "release").Msg("no matching listener to remove")
		}
	}
}

// removeEntries strips all entries matching code and callback identity,
// preserving the order of the remainder.
func removeEntries(entries []listenerEntry, code key.Code, ptr uintptr) ([]listenerEntry, int) {
	kept := entries[:0]
	removed := 0
	for _, e := range entries {
		if e.code == code && e.ptr == ptr {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	// Zero the tail so removed callbacks are not retained.
	for i := len(kept); i < len(entries); i++ {
		entries[i] = listenerEntry{}
	}
	return kept, removed
}

// RemoveAllListeners clears both listener lists. Key state is untouched.
func (r *Registry) RemoveAllListeners() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pressList = nil
	r.releaseList = nil
}

// ClearKeys resets the key state so every key reads as released.
// Listener registrations are untouched.
func (r *Registry) ClearKeys() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pressed = make(map[key.Code]bool)
}

// IsKeyDown reports whether a key is currently pressed. Codes never seen
// in an event read as released.
func (r *Registry) IsKeyDown(code key.Code) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pressed[code]
}

// KeyName returns the semantic name for a code from the static table.
// Lookup does not depend on the key having been observed in an event.
func (r *Registry) KeyName(code key.Code) (string, bool) {
	return key.Name(code)
}

// handlePress processes a raw key-pressed event. A press for a key that
// is already down is ignored, which suppresses hardware auto-repeat.
func (r *Registry) handlePress(ev Event) {
	code := ev.Code()

	r.mu.Lock()
	if r.pressed[code] {
		r.mu.Unlock()
		return
	}
	r.pressed[code] = true
	callbacks := matchingCallbacks(r.pressList, code)
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}

// handleRelease processes a raw key-released event. A release for a key
// that is not down is ignored.
func (r *Registry) handleRelease(ev Event) {
	code := ev.Code()

	r.mu.Lock()
	if !r.pressed[code] {
		r.mu.Unlock()
		return
	}
	r.pressed[code] = false
	callbacks := matchingCallbacks(r.releaseList, code)
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}

// matchingCallbacks snapshots the callbacks registered for a code, in
// insertion order.
func matchingCallbacks(entries []listenerEntry, code key.Code) []Callback {
	var out []Callback
	for _, e := range entries {
		if e.code == code {
			out = append(out, e.cb)
		}
	}
	return out
}
