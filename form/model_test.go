package form

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fallereugene/screen-keyboard-input-components/editor"
	"github.com/fallereugene/screen-keyboard-input-components/field"
	"github.com/fallereugene/screen-keyboard-input-components/internal/config"
	"github.com/fallereugene/screen-keyboard-input-components/keyboard"
)

func testForm() *config.Form {
	code := field.DefaultConfig(field.ModeMask)
	code.Mask.Format = "[00]"
	code.IsRequired = true

	pin := field.DefaultConfig(field.ModeMask)
	pin.Mask.Format = "[999]"
	pin.IsPwd = true

	return &config.Form{
		Keyboard: "numeric",
		Inputs: []config.Input{
			{Name: "code", Label: "Code", Mode: field.ModeMask, Field: code},
			{Name: "name", Label: "Name", Mode: field.ModeString, Field: field.DefaultConfig(field.ModeString)},
			{Name: "pin", Label: "PIN", Mode: field.ModeMask, Field: pin},
		},
	}
}

func newForm(t *testing.T) Model {
	t.Helper()
	m, err := New(testForm(), Options{Style: &Style{}, EditorStyle: &editor.Style{}})
	require.NoError(t, err)
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func TestNew_FocusesFirstInput(t *testing.T) {
	m := newForm(t)
	assert.Equal(t, 0, m.Target())
	assert.False(t, m.KeyboardActive())
	assert.True(t, m.Field(0).Focused())
	assert.False(t, m.Field(1).Focused())
}

func TestNew_Errors(t *testing.T) {
	def := testForm()
	def.Keyboard = "qwerty"
	_, err := New(def, Options{})
	assert.Error(t, err)

	_, err = New(&config.Form{Keyboard: "full"}, Options{})
	assert.Error(t, err)
}

func TestUpdate_FocusCycle(t *testing.T) {
	m := newForm(t)

	m, _ = send(m, keyMsg("tab"))
	assert.Equal(t, 1, m.Target())

	m, _ = send(m, keyMsg("tab"), keyMsg("tab"))
	assert.True(t, m.KeyboardActive())
	assert.Equal(t, 2, m.Target(), "last input stays the target")
	assert.True(t, m.Field(2).Focused())

	m, _ = send(m, keyMsg("tab"))
	assert.False(t, m.KeyboardActive())
	assert.Equal(t, 0, m.Target())

	m, _ = send(m, keyMsg("shift+tab"))
	assert.True(t, m.KeyboardActive())
}

func TestUpdate_TypingGoesToTarget(t *testing.T) {
	m := newForm(t)
	m, _ = send(m, keyMsg("4"), keyMsg("2"), keyMsg("tab"), keyMsg("x"))

	assert.Equal(t, "42", m.Field(0).Field().Value())
	assert.Equal(t, "x", m.Field(1).Field().Value())
}

func TestUpdate_KeyboardPressesReachTarget(t *testing.T) {
	m := newForm(t)
	m, _ = send(m, keyMsg("shift+tab"))
	require.True(t, m.KeyboardActive())
	require.Equal(t, 0, m.Target())

	m, cmd := send(m, keyMsg("enter"))
	require.NotNil(t, cmd, "enter presses the selected key")
	msg := cmd()
	assert.Equal(t, keyboard.SymbolMsg{Symbol: "1"}, msg)

	m, _ = send(m, msg, keyboard.SymbolMsg{Symbol: "7"})
	assert.Equal(t, "17", m.Field(0).Field().Value())

	m, _ = send(m, keyboard.BackspaceMsg{})
	assert.Equal(t, "1", m.Field(0).Field().Value())

	m, _ = send(m, keyboard.ClearMsg{})
	assert.False(t, m.Field(0).Field().HasUserInput())
}

func TestSubmit_InvalidShowsToast(t *testing.T) {
	m := newForm(t)
	m, cmd := send(m, keyMsg("4"), keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Check: Code", m.Toast())

	// The next key only dismisses the toast.
	m, _ = send(m, keyMsg("2"))
	assert.Empty(t, m.Toast())
	assert.Equal(t, "4", m.Field(0).Field().Value())
	assert.Empty(t, m.Log())
}

func TestSubmit_Valid(t *testing.T) {
	m := newForm(t)
	m, _ = send(m, keyMsg("4"), keyMsg("2"), keyMsg("tab"), keyMsg("a"), keyMsg("tab"), keyMsg("7"), keyMsg("tab"), keyMsg("tab"))
	require.Equal(t, 0, m.Target())

	m, cmd := send(m, keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, SubmitMsg{Values: []Value{
		{Name: "code", Value: "42"},
		{Name: "name", Value: "a"},
		{Name: "pin", Value: "7"},
	}}, cmd())

	assert.Equal(t, []string{"code=42", "name=a", "pin=*"}, m.Log())
}

func TestUpdate_MouseFocusAndKeyboard(t *testing.T) {
	m := newForm(t)
	m, _ = send(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	// One line per input, then the keyboard.
	lines := strings.Split(m.View(), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	require.True(t, strings.HasPrefix(lines[1], "Name"), "line 1: %q", lines[1])

	press := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	}

	m, _ = send(m, press(0, 1))
	assert.Equal(t, 1, m.Target())

	m, cmd := send(m, press(1, 3))
	require.NotNil(t, cmd)
	assert.Equal(t, keyboard.SymbolMsg{Symbol: "1"}, cmd())
	assert.Equal(t, 1, m.Target(), "clicking a key keeps the target")
}

func TestReload_KeepsLog(t *testing.T) {
	m := newForm(t)
	m, _ = send(m, keyMsg("1"), keyMsg("2"), keyMsg("enter"))
	require.Len(t, m.Log(), 3)

	next := testForm()
	next.Title = "Second"
	next.Inputs = next.Inputs[:1]
	m, _ = send(m, ReloadMsg{Form: next})

	assert.Len(t, m.Log(), 3)
	assert.Equal(t, "", m.Field(0).Field().Value())
	assert.Equal(t, 0, m.Target())
	assert.True(t, strings.HasPrefix(m.View(), "Second"))
}

func TestReload_ErrorShowsToast(t *testing.T) {
	m := newForm(t)
	m, _ = send(m, ReloadMsg{Form: &config.Form{Keyboard: "qwerty"}})
	assert.Contains(t, m.Toast(), "Reload failed")
	assert.Equal(t, "pin", m.names[2], "inputs untouched")
}
