// Package keyboard provides an on-screen keyboard component for Bubble Tea.
//
// Layouts are described by rows of space separated tokens. A plain token is a
// symbol key. "{action}" and "{action:param}" are action keys, optionally
// prefixed by a custom label in square brackets: "[EN]{lang:en-normal}".
//
// Pressing a key does not edit anything by itself. The model emits
// SymbolMsg, BackspaceMsg or ClearMsg, and the host routes them to the
// focused input.
package keyboard
