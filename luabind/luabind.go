package luabind

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keytap/input"
	"github.com/dshills/keytap/key"
)

// Bridge runs Lua scripts that register key listeners on a registry.
//
// gopher-lua states are not goroutine-safe, so every script run and
// every Lua handler invocation is serialized through the bridge's state
// mutex. Errors raised by a Lua handler are logged, not propagated;
// dispatch to later listeners continues.
type Bridge struct {
	// stateMu guards the Lua state. Held while scripts or handlers run.
	stateMu sync.Mutex
	L       *lua.LState
	closed  bool

	// regMu guards the registration list. Separate from stateMu because
	// registrations are recorded while a script holds the state.
	regMu      sync.Mutex
	registered []registration

	reg *input.Registry
	log zerolog.Logger
}

type registration struct {
	code key.Code
	on   input.Notify
	cb   input.Callback
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the diagnostic logger. The default discards output.
func WithLogger(log zerolog.Logger) Option {
	return func(b *Bridge) {
		b.log = log
	}
}

// New creates a bridge wired to a registry.
func New(reg *input.Registry, opts ...Option) *Bridge {
	b := &Bridge{
		L:   lua.NewState(),
		reg: reg,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.install()
	return b
}

// install publishes the keytap module table.
func (b *Bridge) install() {
	mod := b.L.NewTable()
	b.L.SetField(mod, "on_press", b.L.NewFunction(b.luaOnPress))
	b.L.SetField(mod, "on_release", b.L.NewFunction(b.luaOnRelease))
	b.L.SetField(mod, "is_down", b.L.NewFunction(b.luaIsDown))
	b.L.SetField(mod, "key_name", b.L.NewFunction(b.luaKeyName))
	b.L.SetGlobal("keytap", mod)
}

// DoFile runs a script file in the bridge's state.
func (b *Bridge) DoFile(path string) error {
	b.stateMu.Lock()
	defer b.stateMu.Unlock()

	if b.closed {
		return ErrClosed
	}
	if err := b.L.DoFile(path); err != nil {
		return fmt.Errorf("running %s: %w", path, err)
	}
	return nil
}

// DoString runs script source in the bridge's state.
func (b *Bridge) DoString(src string) error {
	b.stateMu.Lock()
	defer b.stateMu.Unlock()

	if b.closed {
		return ErrClosed
	}
	if err := b.L.DoString(src); err != nil {
		return fmt.Errorf("running script: %w", err)
	}
	return nil
}

// Close removes every listener the bridge registered and closes the Lua
// state. Safe to call twice.
func (b *Bridge) Close() {
	b.stateMu.Lock()
	defer b.stateMu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	b.regMu.Lock()
	registered := b.registered
	b.registered = nil
	b.regMu.Unlock()

	for _, r := range registered {
		b.reg.RemoveListener(r.cb, r.code, r.on)
	}
	b.L.Close()
}

// ListenerCount returns the number of live Lua-registered listeners.
func (b *Bridge) ListenerCount() int {
	b.regMu.Lock()
	defer b.regMu.Unlock()
	return len(b.registered)
}

func (b *Bridge) luaOnPress(L *lua.LState) int {
	return b.register(L, input.NotifyPress)
}

func (b *Bridge) luaOnRelease(L *lua.LState) int {
	return b.register(L, input.NotifyRelease)
}

// register wires a Lua function as a listener. Called while the script
// holds the state mutex, so it must not take it.
func (b *Bridge) register(L *lua.LState, on input.Notify) int {
	code := checkKey(L, 1)
	fn := L.CheckFunction(2)

	cb := b.wrap(fn)
	b.reg.AddListener(cb, code, on)

	b.regMu.Lock()
	b.registered = append(b.registered, registration{code: code, on: on, cb: cb})
	b.regMu.Unlock()
	return 0
}

// wrap turns a Lua function into a callback running under the state
// mutex.
func (b *Bridge) wrap(fn *lua.LFunction) input.Callback {
	return func() {
		b.stateMu.Lock()
		defer b.stateMu.Unlock()

		if b.closed {
			return
		}
		err := b.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true})
		if err != nil {
			b.log.Error().Err(err).Msg("lua key handler failed")
		}
	}
}

func (b *Bridge) luaIsDown(L *lua.LState) int {
	code := checkKey(L, 1)
	L.Push(lua.LBool(b.reg.IsKeyDown(code)))
	return 1
}

func (b *Bridge) luaKeyName(L *lua.LState) int {
	code := checkKey(L, 1)
	name, ok := key.Name(code)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(name))
	return 1
}

// checkKey reads argument n as a key name or numeric code.
func checkKey(L *lua.LState, n int) key.Code {
	switch v := L.Get(n).(type) {
	case lua.LNumber:
		return key.Code(v)
	case lua.LString:
		if c, ok := key.FromName(string(v)); ok {
			return c
		}
		L.ArgError(n, "unknown key name "+string(v))
	default:
		L.ArgError(n, "key name or code expected")
	}
	return key.None
}
