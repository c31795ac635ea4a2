// Package luabind registers Lua functions as key listeners.
//
// A script runs with a keytap module table in scope:
//
//	keytap.on_press("A", function() ... end)
//	keytap.on_release(27, function() ... end)
//	keytap.is_down("Space")
//	keytap.key_name(112)
//
// Keys are named from the static key table or given as numeric codes.
// The bridge owns a single Lua state; handler execution is serialized.
package luabind
