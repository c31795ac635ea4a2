package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keytap/key"
)

// tcellKeys maps tcell special keys to key codes. Character keys arrive
// as KeyRune and are resolved through the rune table instead.
var tcellKeys = map[tcell.Key]key.Code{
	tcell.KeyEscape:     key.Escape,
	tcell.KeyEnter:      key.Enter,
	tcell.KeyTab:        key.Tab,
	tcell.KeyBackspace:  key.Backspace,
	tcell.KeyBackspace2: key.Backspace,
	tcell.KeyDelete:     key.Delete,
	tcell.KeyInsert:     key.Insert,
	tcell.KeyHome:       key.Home,
	tcell.KeyEnd:        key.End,
	tcell.KeyPgUp:       key.PageUp,
	tcell.KeyPgDn:       key.PageDown,
	tcell.KeyUp:         key.Up,
	tcell.KeyDown:       key.Down,
	tcell.KeyLeft:       key.Left,
	tcell.KeyRight:      key.Right,
	tcell.KeyPause:      key.Pause,
	tcell.KeyF1:         key.F1,
	tcell.KeyF2:         key.F2,
	tcell.KeyF3:         key.F3,
	tcell.KeyF4:         key.F4,
	tcell.KeyF5:         key.F5,
	tcell.KeyF6:         key.F6,
	tcell.KeyF7:         key.F7,
	tcell.KeyF8:         key.F8,
	tcell.KeyF9:         key.F9,
	tcell.KeyF10:        key.F10,
	tcell.KeyF11:        key.F11,
	tcell.KeyF12:        key.F12,
}

// codeForKey translates a tcell key event.
func codeForKey(ev *tcell.EventKey) (key.Code, bool) {
	if ev.Key() == tcell.KeyRune {
		return key.FromRune(ev.Rune())
	}
	if c, ok := tcellKeys[ev.Key()]; ok {
		return c, true
	}
	return key.None, false
}
