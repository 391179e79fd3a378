// Package form arranges editor inputs above an on-screen keyboard.
//
// Focus cycles through the inputs and then the keyboard. The input focused
// last stays the target of keyboard presses while the keyboard itself has
// focus.
package form

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/fallereugene/screen-keyboard-input-components/editor"
	"github.com/fallereugene/screen-keyboard-input-components/internal/config"
	"github.com/fallereugene/screen-keyboard-input-components/internal/grapheme"
	"github.com/fallereugene/screen-keyboard-input-components/keyboard"
)

const logHeight = 5

// Value is one submitted input.
type Value struct {
	Name  string
	Value string
}

// SubmitMsg is emitted after a submit with every input valid.
type SubmitMsg struct{ Values []Value }

// ReloadMsg asks the form to replace its inputs.
type ReloadMsg struct{ Form *config.Form }

// Options tune a form; the zero value uses the default style and key maps.
type Options struct {
	Style       *Style
	KeyMap      *KeyMap
	EditorStyle *editor.Style
	Logger      *slog.Logger
}

type Model struct {
	opts  Options
	style Style
	keys  KeyMap

	title  string
	names  []string
	fields []editor.Model
	kb     keyboard.Model

	target   int
	kbActive bool

	log      viewport.Model
	logLines []string
	toast    string
}

// New builds a form from def.
func New(def *config.Form, opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	m := Model{
		opts:  opts,
		style: DefaultStyle(),
		keys:  DefaultKeyMap(),
		log:   viewport.New(0, logHeight),
	}
	if opts.Style != nil {
		m.style = *opts.Style
	}
	if opts.KeyMap != nil {
		m.keys = *opts.KeyMap
	}
	return m.Reload(def)
}

// Reload replaces title, inputs and keyboard with those of def. The
// submission log is kept.
func (m Model) Reload(def *config.Form) (Model, error) {
	set, err := keyboard.BuiltinSet(def.Keyboard)
	if err != nil {
		return m, err
	}
	kbCfg := keyboard.DefaultConfig()
	kbCfg.Set = set
	kbCfg.Logger = m.opts.Logger.With("component", "keyboard")
	kb, err := keyboard.New(kbCfg)
	if err != nil {
		return m, err
	}

	names := make([]string, 0, len(def.Inputs))
	fields := make([]editor.Model, 0, len(def.Inputs))
	for _, in := range def.Inputs {
		cfg := editor.DefaultConfig(in.Mode)
		cfg.Field = in.Field
		cfg.Label = in.Label
		cfg.Logger = m.opts.Logger.With("component", "editor")
		if m.opts.EditorStyle != nil {
			cfg.Style = *m.opts.EditorStyle
		}
		f, err := editor.New(cfg)
		if err != nil {
			return m, fmt.Errorf("input %q: %w", in.Name, err)
		}
		names = append(names, in.Name)
		fields = append(fields, f.Blur())
	}
	if len(fields) == 0 {
		return m, fmt.Errorf("form %q has no inputs", def.Title)
	}

	m.title = def.Title
	m.names = names
	m.fields = fields
	m.kb = kb
	m.kbActive = false
	m.toast = ""
	m.setTarget(0)
	m.opts.Logger.Info("form loaded", "title", def.Title, "inputs", len(fields), "keyboard", def.Keyboard)
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

// Target returns the index of the input receiving typed text.
func (m Model) Target() int { return m.target }

func (m Model) KeyboardActive() bool { return m.kbActive }

// Field returns input i.
func (m Model) Field(i int) editor.Model { return m.fields[i] }

// Toast returns the error message currently shown, if any.
func (m Model) Toast() string { return m.toast }

// Log returns the submission log lines.
func (m Model) Log() []string { return m.logLines }

func (m *Model) setTarget(i int) {
	for j := range m.fields {
		if j == i {
			m.fields[j] = m.fields[j].Focus()
		} else {
			m.fields[j] = m.fields[j].Blur()
		}
	}
	m.target = i
}

// cycle moves focus through the inputs and then the keyboard.
func (m *Model) cycle(delta int) {
	n := len(m.fields) + 1
	pos := m.target
	if m.kbActive {
		pos = len(m.fields)
	}
	pos = ((pos+delta)%n + n) % n

	m.kbActive = pos == len(m.fields)
	if m.kbActive {
		m.kb = m.kb.Focus()
		return
	}
	m.kb = m.kb.Blur()
	m.setTarget(pos)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.log.Width = msg.Width
		return m, nil

	case ReloadMsg:
		next, err := m.Reload(msg.Form)
		if err != nil {
			m.opts.Logger.Error("form reload failed", "error", err)
			m.toast = "Reload failed: " + err.Error()
			return m, nil
		}
		return next, nil

	case keyboard.SymbolMsg, keyboard.BackspaceMsg, keyboard.ClearMsg:
		var cmd tea.Cmd
		m.fields[m.target], cmd = m.fields[m.target].Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.toast != "" {
			m.toast = ""
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		case !m.kbActive && key.Matches(msg, m.keys.Submit):
			return m.submit()
		}

		var cmd tea.Cmd
		if m.kbActive {
			m.kb, cmd = m.kb.Update(msg)
		} else {
			m.fields[m.target], cmd = m.fields[m.target].Update(msg)
		}
		return m, cmd

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) submit() (Model, tea.Cmd) {
	var invalid []string
	values := make([]Value, 0, len(m.fields))
	for i, f := range m.fields {
		if !f.Field().Valid() {
			invalid = append(invalid, f.Label())
			continue
		}
		values = append(values, Value{Name: m.names[i], Value: f.Field().Value()})
	}
	if len(invalid) > 0 {
		m.toast = "Check: " + strings.Join(invalid, ", ")
		m.opts.Logger.Info("submit rejected", "invalid", len(invalid))
		return m, nil
	}

	for i, v := range values {
		shown := v.Value
		if cfg := m.fields[i].Field().Config(); cfg.IsPwd {
			shown = strings.Repeat(cfg.PwdChar, grapheme.Count(v.Value))
		}
		m.logLines = append(m.logLines, v.Name+"="+shown)
	}
	m.log.SetContent(strings.Join(m.logLines, "\n"))
	m.log.GotoBottom()
	m.opts.Logger.Info("form submitted", "inputs", len(values))

	return m, func() tea.Msg { return SubmitMsg{Values: values} }
}

// sections returns the rendered blocks from top to bottom.
func (m Model) sections() (title string, fields []string, kb string) {
	if m.title != "" {
		title = m.style.Title.Render(m.title)
	}
	fields = make([]string, len(m.fields))
	for i, f := range m.fields {
		fields[i] = f.View()
	}
	frame := m.style.Keyboard
	if m.kbActive {
		frame = m.style.KeyboardActive
	}
	kb = frame.Render(m.kb.View())
	return title, fields, kb
}

func (m Model) View() string {
	title, fields, kb := m.sections()

	blocks := make([]string, 0, len(fields)+3)
	if title != "" {
		blocks = append(blocks, title)
	}
	blocks = append(blocks, fields...)
	blocks = append(blocks, kb)
	if len(m.logLines) > 0 {
		blocks = append(blocks, m.style.Log.Render(m.log.View()))
	}
	base := lipgloss.JoinVertical(lipgloss.Left, blocks...)

	if m.toast == "" {
		return base
	}
	return overlay.Composite(m.style.Toast.Render(m.toast), base, overlay.Center, overlay.Center, 0, 0)
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	title, fields, kb := m.sections()

	y := msg.Y
	if title != "" {
		y -= lipgloss.Height(title)
	}
	for i, f := range fields {
		h := lipgloss.Height(f)
		if y >= 0 && y < h {
			if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
				m.kbActive = false
				m.kb = m.kb.Blur()
				m.setTarget(i)
			}
			return m, nil
		}
		y -= h
	}

	frame := m.style.Keyboard
	if m.kbActive {
		frame = m.style.KeyboardActive
	}
	if y >= 0 && y < lipgloss.Height(kb) {
		inner := msg
		inner.X -= frame.GetBorderLeftSize() + frame.GetPaddingLeft() + frame.GetMarginLeft()
		inner.Y = y - (frame.GetBorderTopSize() + frame.GetPaddingTop() + frame.GetMarginTop())
		var cmd tea.Cmd
		m.kb, cmd = m.kb.Update(inner)
		return m, cmd
	}

	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)
	return m, cmd
}
