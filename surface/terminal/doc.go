// Package terminal provides an input surface backed by a tcell screen.
//
// Terminals report key presses but never key releases, so the surface
// synthesizes a release immediately after each press. Key-hold state is
// therefore not observable through this surface; every keystroke is a
// complete press/release transition pair.
package terminal
