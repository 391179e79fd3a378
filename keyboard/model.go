package keyboard

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SymbolMsg is emitted when a symbol key or the space key is pressed.
// Symbol is already normalized.
type SymbolMsg struct{ Symbol string }

type BackspaceMsg struct{}

type ClearMsg struct{}

// Config configures the keyboard Model.
type Config struct {
	Set    Set
	Style  Style
	KeyMap KeyMap

	// Logger receives layout switching diagnostics. Nil discards them.
	Logger *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		Set:    FullSet(),
		Style:  DefaultStyle(),
		KeyMap: DefaultKeyMap(),
	}
}

// Model is a Bubble Tea on-screen keyboard.
type Model struct {
	cfg Config

	layout   string
	previous string

	row, col int
	focused  bool
}

func New(cfg Config) (Model, error) {
	if len(cfg.Set.Names) == 0 {
		return Model{}, errors.New("keyboard: empty layout set")
	}
	for _, name := range cfg.Set.Names {
		if !cfg.Set.Has(name) {
			return Model{}, fmt.Errorf("keyboard: layout %q not defined", name)
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return Model{cfg: cfg, layout: cfg.Set.Initial()}, nil
}

func (m Model) Init() tea.Cmd { return nil }

// Layout returns the name of the visible layout.
func (m Model) Layout() string { return m.layout }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) current() Layout { return m.cfg.Set.Layouts[m.layout] }

// Selected returns the key under the keyboard cursor.
func (m Model) Selected() (Key, bool) {
	rows := m.current().Rows
	if m.row < 0 || m.row >= len(rows) || m.col < 0 || m.col >= len(rows[m.row]) {
		return Key{}, false
	}
	return rows[m.row][m.col], true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		km := m.cfg.KeyMap
		switch {
		case key.Matches(msg, km.Left):
			m.moveCol(-1)
		case key.Matches(msg, km.Right):
			m.moveCol(1)
		case key.Matches(msg, km.Up):
			m.moveRow(-1)
		case key.Matches(msg, km.Down):
			m.moveRow(1)
		case key.Matches(msg, km.Press):
			if k, ok := m.Selected(); ok {
				return m.Press(k)
			}
		}
	case tea.MouseMsg:
		// Coordinates are relative to the top-left corner of View.
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		row, col, ok := m.keyAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.row, m.col = row, col
		return m.Press(m.current().Rows[row][col])
	}
	return m, nil
}

// Press performs k as if it was clicked.
func (m Model) Press(k Key) (Model, tea.Cmd) {
	switch k.Action {
	case ActionNone:
		return m, emit(SymbolMsg{Symbol: Normalize(k.Symbol)})
	case ActionSpace:
		return m, emit(SymbolMsg{Symbol: NBSP})
	case ActionBackspace:
		return m, emit(BackspaceMsg{})
	case ActionClear:
		return m, emit(ClearMsg{})
	case ActionShift, ActionLang:
		if k.Param == "" {
			m.cfg.Logger.Warn("target layout not specified", "action", string(k.Action), "layout", m.layout)
			return m, nil
		}
		m.switchTo(k.Param)
	case ActionNum:
		if m.layout == string(ActionNum) {
			if m.previous != "" {
				m.switchTo(m.previous)
			}
			return m, nil
		}
		prev := m.layout
		if m.switchTo(string(ActionNum)) {
			m.previous = prev
		}
	}
	return m, nil
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *Model) switchTo(name string) bool {
	if !m.cfg.Set.Has(name) {
		m.cfg.Logger.Warn("unknown target layout", "target", name, "layout", m.layout)
		return false
	}
	m.cfg.Logger.Debug("layout switched", "from", m.layout, "to", name)
	m.layout = name
	m.moveRow(0)
	return true
}

func (m *Model) moveCol(delta int) {
	rows := m.current().Rows
	if len(rows) == 0 || len(rows[m.row]) == 0 {
		return
	}
	n := len(rows[m.row])
	m.col = ((m.col+delta)%n + n) % n
}

// moveRow wraps the row and clamps the column into the new row.
func (m *Model) moveRow(delta int) {
	rows := m.current().Rows
	if len(rows) == 0 {
		m.row, m.col = 0, 0
		return
	}
	n := len(rows)
	m.row = ((m.row+delta)%n + n) % n
	if last := len(rows[m.row]) - 1; m.col > last {
		m.col = max(last, 0)
	}
}

func (m Model) View() string {
	rows := m.current().Rows
	lines := make([]string, 0, len(rows))
	for r, row := range rows {
		var sb strings.Builder
		for c, k := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.renderKey(r, c, k))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderKey(r, c int, k Key) string {
	st := m.cfg.Style.Key
	if k.IsAction() {
		st = m.cfg.Style.Action
	}
	if m.focused && r == m.row && c == m.col {
		st = m.cfg.Style.Selected
	}
	return st.Render(k.Label)
}

// keyAt maps view coordinates to a key. The single cell between keys
// belongs to no key.
func (m Model) keyAt(x, y int) (row, col int, ok bool) {
	rows := m.current().Rows
	if y < 0 || y >= len(rows) || x < 0 {
		return 0, 0, false
	}
	left := 0
	for c, k := range rows[y] {
		if c > 0 {
			left++
		}
		w := lipgloss.Width(m.renderKey(y, c, k))
		if x >= left && x < left+w {
			return y, c, true
		}
		left += w
	}
	return 0, 0, false
}
