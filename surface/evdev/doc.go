// Package evdev provides an input surface backed by a Linux evdev
// device. Key events read from the device are translated to key codes and
// delivered as press and release events. Autorepeat events are forwarded
// as presses; the registry's repeat suppression drops them.
package evdev
