package editor

import "github.com/fallereugene/screen-keyboard-input-components/field"

// ChangeEvent describes the field after an accepted edit.
type ChangeEvent struct {
	Label        string
	Value        string
	Valid        bool
	HasUserInput bool
	Cursor       field.Cursor
}

func buildChangeEvent(label string, f *field.Field) ChangeEvent {
	st := f.State()
	return ChangeEvent{
		Label:        label,
		Value:        st.Value,
		Valid:        st.IsValid,
		HasUserInput: st.HasUserInput,
		Cursor:       f.Cursor(),
	}
}
