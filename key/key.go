package key

import (
	"strconv"
	"strings"
	"unicode"
)

// Code identifies a physical key, independent of localization and layout.
type Code uint16

// None represents no key.
const None Code = 0

// Control and navigation keys.
const (
	Backspace Code = 8
	Tab       Code = 9
	Enter     Code = 13
	Shift     Code = 16
	Control   Code = 17
	Alt       Code = 18
	Pause     Code = 19
	CapsLock  Code = 20
	Escape    Code = 27
	Space     Code = 32
	PageUp    Code = 33
	PageDown  Code = 34
	End       Code = 35
	Home      Code = 36
	Left      Code = 37
	Up        Code = 38
	Right     Code = 39
	Down      Code = 40
	Insert    Code = 45
	Delete    Code = 46
)

// Digit keys on the main row.
const (
	Digit0 Code = 48 + iota
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
)

// Letter keys.
const (
	A Code = 65 + iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
)

// Meta and menu keys.
const (
	MetaLeft  Code = 91
	MetaRight Code = 92
	Menu      Code = 93
)

// Numpad keys.
const (
	Numpad0 Code = 96 + iota
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadMultiply
	NumpadAdd
	numpadSeparator // 108, unused on modern layouts
	NumpadSubtract
	NumpadDecimal
	NumpadDivide
)

// Function keys.
const (
	F1 Code = 112 + iota
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
)

// Lock keys.
const (
	NumLock    Code = 144
	ScrollLock Code = 145
)

// Punctuation keys.
const (
	Semicolon    Code = 186
	Equal        Code = 187
	Comma        Code = 188
	Minus        Code = 189
	Period       Code = 190
	Slash        Code = 191
	Backquote    Code = 192
	BracketLeft  Code = 219
	Backslash    Code = 220
	BracketRight Code = 221
	Quote        Code = 222
)

// codes is the static table mapping semantic key names to codes.
var codes = map[string]Code{
	"Backspace":      Backspace,
	"Tab":            Tab,
	"Enter":          Enter,
	"Shift":          Shift,
	"Control":        Control,
	"Alt":            Alt,
	"Pause":          Pause,
	"CapsLock":       CapsLock,
	"Escape":         Escape,
	"Space":          Space,
	"PageUp":         PageUp,
	"PageDown":       PageDown,
	"End":            End,
	"Home":           Home,
	"Left":           Left,
	"Up":             Up,
	"Right":          Right,
	"Down":           Down,
	"Insert":         Insert,
	"Delete":         Delete,
	"0":              Digit0,
	"1":              Digit1,
	"2":              Digit2,
	"3":              Digit3,
	"4":              Digit4,
	"5":              Digit5,
	"6":              Digit6,
	"7":              Digit7,
	"8":              Digit8,
	"9":              Digit9,
	"A":              A,
	"B":              B,
	"C":              C,
	"D":              D,
	"E":              E,
	"F":              F,
	"G":              G,
	"H":              H,
	"I":              I,
	"J":              J,
	"K":              K,
	"L":              L,
	"M":              M,
	"N":              N,
	"O":              O,
	"P":              P,
	"Q":              Q,
	"R":              R,
	"S":              S,
	"T":              T,
	"U":              U,
	"V":              V,
	"W":              W,
	"X":              X,
	"Y":              Y,
	"Z":              Z,
	"MetaLeft":       MetaLeft,
	"MetaRight":      MetaRight,
	"Menu":           Menu,
	"Numpad0":        Numpad0,
	"Numpad1":        Numpad1,
	"Numpad2":        Numpad2,
	"Numpad3":        Numpad3,
	"Numpad4":        Numpad4,
	"Numpad5":        Numpad5,
	"Numpad6":        Numpad6,
	"Numpad7":        Numpad7,
	"Numpad8":        Numpad8,
	"Numpad9":        Numpad9,
	"NumpadMultiply": NumpadMultiply,
	"NumpadAdd":      NumpadAdd,
	"NumpadSubtract": NumpadSubtract,
	"NumpadDecimal":  NumpadDecimal,
	"NumpadDivide":   NumpadDivide,
	"F1":             F1,
	"F2":             F2,
	"F3":             F3,
	"F4":             F4,
	"F5":             F5,
	"F6":             F6,
	"F7":             F7,
	"F8":             F8,
	"F9":             F9,
	"F10":            F10,
	"F11":            F11,
	"F12":            F12,
	"NumLock":        NumLock,
	"ScrollLock":     ScrollLock,
	"Semicolon":      Semicolon,
	"Equal":          Equal,
	"Comma":          Comma,
	"Minus":          Minus,
	"Period":         Period,
	"Slash":          Slash,
	"Backquote":      Backquote,
	"BracketLeft":    BracketLeft,
	"Backslash":      Backslash,
	"BracketRight":   BracketRight,
	"Quote":          Quote,
}

// aliases maps common alternate spellings (lowercase) to canonical names.
var aliases = map[string]string{
	"esc":    "Escape",
	"return": "Enter",
	"cr":     "Enter",
	"bs":     "Backspace",
	"del":    "Delete",
	"ins":    "Insert",
	"pgup":   "PageUp",
	"pgdn":   "PageDown",
	"ctrl":   "Control",
	"meta":   "MetaLeft",
	"super":  "MetaLeft",
}

// names is the reverse of codes, built once at init.
var names map[Code]string

// lowerNames maps lowercased names to codes for case-insensitive lookup.
var lowerNames map[string]Code

func init() {
	names = make(map[Code]string, len(codes))
	lowerNames = make(map[string]Code, len(codes))
	for name, code := range codes {
		names[code] = name
		lowerNames[strings.ToLower(name)] = code
	}
}

// Name returns the semantic name for a code from the static table.
// The second return value is false for codes outside the table.
func (c Code) Name() (string, bool) {
	name, ok := names[c]
	return name, ok
}

// String returns the semantic name, or "Code(n)" for unknown codes.
func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// Name returns the semantic name for a code from the static table.
func Name(c Code) (string, bool) {
	return c.Name()
}

// FromName returns the code for a key name. Lookup is case-insensitive
// and accepts common aliases ("esc", "ctrl", "pgup").
func FromName(name string) (Code, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[lower]; ok {
		lower = strings.ToLower(canonical)
	}
	c, ok := lowerNames[lower]
	return c, ok
}

// FromRune returns the code for a printable character, folding letters to
// their single uppercase key. Returns false for characters without a key.
func FromRune(r rune) (Code, bool) {
	switch {
	case r == ' ':
		return Space, true
	case r >= '0' && r <= '9':
		return Digit0 + Code(r-'0'), true
	case unicode.IsLetter(r):
		upper := unicode.ToUpper(r)
		if upper >= 'A' && upper <= 'Z' {
			return A + Code(upper-'A'), true
		}
		return None, false
	}
	switch r {
	case ';', ':':
		return Semicolon, true
	case '=', '+':
		return Equal, true
	case ',', '<':
		return Comma, true
	case '-', '_':
		return Minus, true
	case '.', '>':
		return Period, true
	case '/', '?':
		return Slash, true
	case '`', '~':
		return Backquote, true
	case '[', '{':
		return BracketLeft, true
	case '\\', '|':
		return Backslash, true
	case ']', '}':
		return BracketRight, true
	case '\'', '"':
		return Quote, true
	case '*':
		return NumpadMultiply, true
	}
	return None, false
}

// Codes returns a copy of the static name-to-code table.
func Codes() map[string]Code {
	out := make(map[string]Code, len(codes))
	for name, code := range codes {
		out[name] = code
	}
	return out
}

// IsLetter returns true for letter keys (A-Z).
func (c Code) IsLetter() bool {
	return c >= A && c <= Z
}

// IsDigit returns true for main-row digit keys.
func (c Code) IsDigit() bool {
	return c >= Digit0 && c <= Digit9
}

// IsFunction returns true for function keys (F1-F12).
func (c Code) IsFunction() bool {
	return c >= F1 && c <= F12
}

// IsNumpad returns true for numpad keys.
func (c Code) IsNumpad() bool {
	return c >= Numpad0 && c <= NumpadDivide
}

// IsNavigation returns true for arrow and paging keys.
func (c Code) IsNavigation() bool {
	return (c >= PageUp && c <= Down) || c == Insert || c == Delete
}

// IsModifier returns true for modifier keys.
func (c Code) IsModifier() bool {
	return c == Shift || c == Control || c == Alt || c == MetaLeft || c == MetaRight
}
