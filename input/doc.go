// Package input tracks per-key pressed state and dispatches registered
// callbacks when key codes transition down or up.
//
// A Registry subscribes to a Surface, an event source delivering
// "key-pressed" and "key-released" events. Repeated press events for a key
// that is already down are suppressed, so a callback fires exactly once per
// genuine transition. Dispatch is synchronous and runs in registration
// order.
package input
