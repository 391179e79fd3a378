package editor

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fallereugene/screen-keyboard-input-components/field"
	"github.com/fallereugene/screen-keyboard-input-components/keyboard"
)

// Model is a Bubble Tea component that renders and edits one field.
type Model struct {
	cfg Config
	f   *field.Field

	focused bool
}

// New builds the field described by cfg. Configuration errors of the field
// (unknown mode, bad regexp or date bound) are returned as is.
func New(cfg Config) (Model, error) {
	f, err := field.New(cfg.Mode, cfg.Field)
	if err != nil {
		return Model{}, err
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return Model{cfg: cfg, f: f, focused: true}, nil
}

// Field returns the underlying field. Hosts may drive it directly.
func (m Model) Field() *field.Field { return m.f }

func (m Model) Label() string { return m.cfg.Label }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// Update applies key presses and on-screen keyboard messages to the field.
// A blurred model ignores everything.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused || m.f == nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case keyboard.SymbolMsg:
		m.apply("symbol", func() bool { return m.f.Paste(msg.Symbol) })
	case keyboard.BackspaceMsg:
		m.apply("backspace", m.f.Backspace)
	case keyboard.ClearMsg:
		m.apply("clear", m.f.Clear)
	}
	return m, nil
}

// apply runs one field operation and reports its outcome.
func (m Model) apply(op string, fn func() bool) bool {
	if !fn() {
		m.cfg.Logger.Debug("edit rejected",
			"op", op,
			"field", m.cfg.Label,
			"mode", string(m.f.Mode()),
			"cursor", m.f.Cursor().Position,
		)
		return false
	}
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.cfg.Label, m.f))
	}
	return true
}
