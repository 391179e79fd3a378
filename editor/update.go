package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fallereugene/screen-keyboard-input-components/internal/grapheme"
	"github.com/fallereugene/screen-keyboard-input-components/keyboard"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		text := normalizeText(string(msg.Runes))
		m.apply("paste", func() bool { return m.f.Paste(text) })
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Backspace):
		m.apply("backspace", m.f.Backspace)
	case key.Matches(msg, km.Clear):
		m.apply("clear", m.f.Clear)
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()
	case msg.Type == tea.KeySpace:
		m.apply("space", func() bool { return m.f.PasteChar(keyboard.NBSP) })
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		for _, ch := range grapheme.Split(string(msg.Runes)) {
			ch = keyboard.Normalize(ch)
			m.apply("type", func() bool { return m.f.PasteChar(ch) })
		}
	}
	return m, nil
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.cfg.Logger.Warn("clipboard read failed", "field", m.cfg.Label, "error", err)
		return
	}
	if s == "" {
		return
	}
	s = normalizeText(s)
	m.apply("paste", func() bool { return m.f.Paste(s) })
}

var lineBreaks = strings.NewReplacer("\r\n", "", "\r", "", "\n", "")

// normalizeText prepares external text the way keyboard symbols are
// prepared. Line breaks are dropped; fields are one line.
func normalizeText(s string) string {
	var sb strings.Builder
	for _, ch := range grapheme.Split(lineBreaks.Replace(s)) {
		sb.WriteString(keyboard.Normalize(ch))
	}
	return sb.String()
}
