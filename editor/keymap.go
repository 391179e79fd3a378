package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Typed runes and the space bar are not bindings: they always go to the
// field.
type KeyMap struct {
	Backspace key.Binding
	Clear     key.Binding
	Paste     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Clear:     key.NewBinding(key.WithKeys("delete", "ctrl+u"), key.WithHelp("del", "clear")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}
