// Package bindings loads key binding files and applies them to a
// registry. A binding maps a key, named from the static key table or
// given as a raw numeric code, to an action string routed to a single
// action function. A watcher reloads the file on change.
package bindings
