package evdev

import (
	"github.com/holoplot/go-evdev"

	"github.com/dshills/keytap/key"
)

// evdevCodes maps kernel key codes to key codes. Keys without a code in
// the table (media keys, extra buttons) are dropped by the read loop.
var evdevCodes = map[evdev.EvCode]key.Code{
	evdev.KEY_ESC:        key.Escape,
	evdev.KEY_1:          key.Digit1,
	evdev.KEY_2:          key.Digit2,
	evdev.KEY_3:          key.Digit3,
	evdev.KEY_4:          key.Digit4,
	evdev.KEY_5:          key.Digit5,
	evdev.KEY_6:          key.Digit6,
	evdev.KEY_7:          key.Digit7,
	evdev.KEY_8:          key.Digit8,
	evdev.KEY_9:          key.Digit9,
	evdev.KEY_0:          key.Digit0,
	evdev.KEY_MINUS:      key.Minus,
	evdev.KEY_EQUAL:      key.Equal,
	evdev.KEY_BACKSPACE:  key.Backspace,
	evdev.KEY_TAB:        key.Tab,
	evdev.KEY_Q:          key.Q,
	evdev.KEY_W:          key.W,
	evdev.KEY_E:          key.E,
	evdev.KEY_R:          key.R,
	evdev.KEY_T:          key.T,
	evdev.KEY_Y:          key.Y,
	evdev.KEY_U:          key.U,
	evdev.KEY_I:          key.I,
	evdev.KEY_O:          key.O,
	evdev.KEY_P:          key.P,
	evdev.KEY_LEFTBRACE:  key.BracketLeft,
	evdev.KEY_RIGHTBRACE: key.BracketRight,
	evdev.KEY_ENTER:      key.Enter,
	evdev.KEY_LEFTCTRL:   key.Control,
	evdev.KEY_A:          key.A,
	evdev.KEY_S:          key.S,
	evdev.KEY_D:          key.D,
	evdev.KEY_F:          key.F,
	evdev.KEY_G:          key.G,
	evdev.KEY_H:          key.H,
	evdev.KEY_J:          key.J,
	evdev.KEY_K:          key.K,
	evdev.KEY_L:          key.L,
	evdev.KEY_SEMICOLON:  key.Semicolon,
	evdev.KEY_APOSTROPHE: key.Quote,
	evdev.KEY_GRAVE:      key.Backquote,
	evdev.KEY_LEFTSHIFT:  key.Shift,
	evdev.KEY_BACKSLASH:  key.Backslash,
	evdev.KEY_Z:          key.Z,
	evdev.KEY_X:          key.X,
	evdev.KEY_C:          key.C,
	evdev.KEY_V:          key.V,
	evdev.KEY_B:          key.B,
	evdev.KEY_N:          key.N,
	evdev.KEY_M:          key.M,
	evdev.KEY_COMMA:      key.Comma,
	evdev.KEY_DOT:        key.Period,
	evdev.KEY_SLASH:      key.Slash,
	evdev.KEY_RIGHTSHIFT: key.Shift,
	evdev.KEY_KPASTERISK: key.NumpadMultiply,
	evdev.KEY_LEFTALT:    key.Alt,
	evdev.KEY_SPACE:      key.Space,
	evdev.KEY_CAPSLOCK:   key.CapsLock,
	evdev.KEY_F1:         key.F1,
	evdev.KEY_F2:         key.F2,
	evdev.KEY_F3:         key.F3,
	evdev.KEY_F4:         key.F4,
	evdev.KEY_F5:         key.F5,
	evdev.KEY_F6:         key.F6,
	evdev.KEY_F7:         key.F7,
	evdev.KEY_F8:         key.F8,
	evdev.KEY_F9:         key.F9,
	evdev.KEY_F10:        key.F10,
	evdev.KEY_F11:        key.F11,
	evdev.KEY_F12:        key.F12,
	evdev.KEY_NUMLOCK:    key.NumLock,
	evdev.KEY_SCROLLLOCK: key.ScrollLock,
	evdev.KEY_KP7:        key.Numpad7,
	evdev.KEY_KP8:        key.Numpad8,
	evdev.KEY_KP9:        key.Numpad9,
	evdev.KEY_KPMINUS:    key.NumpadSubtract,
	evdev.KEY_KP4:        key.Numpad4,
	evdev.KEY_KP5:        key.Numpad5,
	evdev.KEY_KP6:        key.Numpad6,
	evdev.KEY_KPPLUS:     key.NumpadAdd,
	evdev.KEY_KP1:        key.Numpad1,
	evdev.KEY_KP2:        key.Numpad2,
	evdev.KEY_KP3:        key.Numpad3,
	evdev.KEY_KP0:        key.Numpad0,
	evdev.KEY_KPDOT:      key.NumpadDecimal,
	evdev.KEY_KPENTER:    key.Enter,
	evdev.KEY_RIGHTCTRL:  key.Control,
	evdev.KEY_KPSLASH:    key.NumpadDivide,
	evdev.KEY_RIGHTALT:   key.Alt,
	evdev.KEY_HOME:       key.Home,
	evdev.KEY_UP:         key.Up,
	evdev.KEY_PAGEUP:     key.PageUp,
	evdev.KEY_LEFT:       key.Left,
	evdev.KEY_RIGHT:      key.Right,
	evdev.KEY_END:        key.End,
	evdev.KEY_DOWN:       key.Down,
	evdev.KEY_PAGEDOWN:   key.PageDown,
	evdev.KEY_INSERT:     key.Insert,
	evdev.KEY_DELETE:     key.Delete,
	evdev.KEY_PAUSE:      key.Pause,
	evdev.KEY_LEFTMETA:   key.MetaLeft,
	evdev.KEY_RIGHTMETA:  key.MetaRight,
	evdev.KEY_COMPOSE:    key.Menu,
}

// codeFor translates a kernel key code.
func codeFor(c evdev.EvCode) (key.Code, bool) {
	kc, ok := evdevCodes[c]
	return kc, ok
}
