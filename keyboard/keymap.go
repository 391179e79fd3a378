package keyboard

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the bindings used while the keyboard has focus.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Press                 key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "key left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "key right")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "row up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "row down")),
		Press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
	}
}
