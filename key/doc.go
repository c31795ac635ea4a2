// Package key defines the key code type and the static table mapping
// semantic key names to codes.
//
// Codes follow the conventional virtual key-code values (A=65, Escape=27,
// F1=112) so they are stable across input surfaces and layouts.
package key
