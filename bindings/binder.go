package bindings

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/dshills/keytap/input"
	"github.com/dshills/keytap/key"
)

// ActionFunc receives the action name of a triggered binding.
type ActionFunc func(action string)

// Binder applies binding sets to a registry, routing triggered bindings
// to a single action function. Applying a new set replaces the listeners
// of the previous one; listeners registered directly on the registry are
// untouched.
type Binder struct {
	mu sync.Mutex

	reg    *input.Registry
	action ActionFunc
	log    zerolog.Logger

	applied []appliedBinding
}

type appliedBinding struct {
	code key.Code
	on   input.Notify
	cb   input.Callback
}

// BinderOption configures a Binder.
type BinderOption func(*Binder)

// WithBinderLogger sets the diagnostic logger. The default discards
// output.
func WithBinderLogger(log zerolog.Logger) BinderOption {
	return func(b *Binder) {
		b.log = log
	}
}

// NewBinder creates a binder for a registry and action function.
func NewBinder(reg *input.Registry, action ActionFunc, opts ...BinderOption) *Binder {
	b := &Binder{
		reg:    reg,
		action: action,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Apply registers the set's bindings, replacing any previously applied
// set.
func (b *Binder) Apply(set *Set) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clearLocked()

	for _, binding := range set.Bindings() {
		action := binding.Action
		cb := func() { b.action(action) }
		b.reg.AddListener(cb, binding.Code, binding.On)
		b.applied = append(b.applied, appliedBinding{
			code: binding.Code,
			on:   binding.On,
			cb:   cb,
		})
	}

	b.log.Debug().Int("bindings", len(b.applied)).Msg("bindings applied")
}

// Clear removes all listeners the binder registered.
func (b *Binder) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearLocked()
}

func (b *Binder) clearLocked() {
	for _, a := range b.applied {
		b.reg.RemoveListener(a.cb, a.code, a.on)
	}
	b.applied = nil
}

// Count returns the number of currently applied bindings.
func (b *Binder) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.applied)
}
