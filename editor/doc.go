// Package editor provides a Bubble Tea input component backed by the field
// package.
//
// The package is responsible for key handling, routing of on-screen keyboard
// messages, cell rendering and change notifications. All editing semantics
// live in field; a Model only decides which field operation a message maps to.
package editor
