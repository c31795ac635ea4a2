package luabind

import "errors"

// ErrClosed is returned when running scripts on a closed bridge.
var ErrClosed = errors.New("lua bridge is closed")
