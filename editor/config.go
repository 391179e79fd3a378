package editor

import (
	"log/slog"

	"github.com/fallereugene/screen-keyboard-input-components/field"
)

// Config configures the editor Model.
type Config struct {
	// Mode selects the field strategy; Field is the resolved field
	// configuration, normally derived from field.DefaultConfig(Mode).
	Mode  field.Mode
	Field field.Config

	// Label is drawn to the left of the cells.
	Label string

	Style  Style
	KeyMap KeyMap

	// Clipboard backs the paste binding. Nil disables it.
	Clipboard Clipboard

	// OnChange is called synchronously after every accepted edit.
	OnChange func(ChangeEvent)

	// Logger receives rejected edits at debug level. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a config for mode with default field settings,
// style and key map.
func DefaultConfig(mode field.Mode) Config {
	return Config{
		Mode:   mode,
		Field:  field.DefaultConfig(mode),
		Style:  DefaultStyle(),
		KeyMap: DefaultKeyMap(),
	}
}
