package field

import (
	"fmt"
	"slices"

	"github.com/fallereugene/screen-keyboard-input-components/internal/grapheme"
)

// strategy is implemented by each editing variant.
type strategy interface {
	buffer() *cellBuffer

	// init resets the buffer to its initial layout and, when setValue is
	// true, pastes the configured initial value.
	init(setValue bool)
	pasteChar(ch string) bool
	backspace() bool
	value() string
	hasUserInput() bool
	valid() bool
}

// Field is an editor instance for one input. It is created by New and
// mutated in place for the rest of its life.
type Field struct {
	mode Mode
	cfg  *Config
	s    strategy
}

// New builds the editor matching mode from cfg and initializes it.
//
// cfg is copied; see DefaultConfig for the defaults callers normally start
// from. An unknown mode fails with ErrUnknownMode.
func New(mode Mode, cfg Config) (*Field, error) {
	c := cfg.clone()

	var (
		s   strategy
		err error
	)
	switch mode {
	case ModeString:
		s, err = newStringEditor(&c)
	case ModeFraction:
		s, err = newFractionEditor(&c)
	case ModeMask:
		s, err = newMaskEditor(&c)
	default:
		return nil, fmt.Errorf("field: mode %q: %w", mode, ErrUnknownMode)
	}
	if err != nil {
		return nil, err
	}

	s.init(true)
	return &Field{mode: mode, cfg: &c, s: s}, nil
}

func (f *Field) Mode() Mode { return f.mode }

// Config returns a copy of the configuration the field was built with.
func (f *Field) Config() Config { return f.cfg.clone() }

func (f *Field) Cursor() Cursor { return f.s.buffer().cursor }

// State returns a snapshot of the buffer together with validity, user input
// presence and the logical value.
func (f *Field) State() State {
	return State{
		Cells:        slices.Clone(f.s.buffer().cells),
		IsValid:      f.s.valid(),
		HasUserInput: f.s.hasUserInput(),
		Value:        f.s.value(),
	}
}

// PasteChar applies one character (a grapheme cluster). It reports whether
// the character was accepted; a rejected character leaves the field as is.
func (f *Field) PasteChar(ch string) bool { return f.s.pasteChar(ch) }

// Paste applies PasteChar to every grapheme cluster of text in order.
//
// The result is that of the last character only: earlier rejections are
// not reported.
func (f *Field) Paste(text string) bool { return pasteAll(f.s, text) }

func (f *Field) Backspace() bool { return f.s.backspace() }

// Clear restores the initial buffer without the configured initial value.
// It reports false and does nothing when there is no user input.
func (f *Field) Clear() bool {
	if !f.s.hasUserInput() {
		return false
	}
	f.s.init(false)
	return true
}

func (f *Field) Value() string { return f.s.value() }

func (f *Field) HasUserInput() bool { return f.s.hasUserInput() }

func (f *Field) Valid() bool { return f.s.valid() }

func pasteAll(s strategy, text string) bool {
	accepted := false
	for _, ch := range grapheme.Split(text) {
		accepted = s.pasteChar(ch)
	}
	return accepted
}
