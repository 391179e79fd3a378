package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fallereugene/screen-keyboard-input-components/field"
	"github.com/fallereugene/screen-keyboard-input-components/internal/grapheme"
)

// View renders the label and the framed cells.
func (m Model) View() string {
	if m.f == nil {
		return ""
	}

	frame := m.cfg.Style.Valid
	if !m.f.Valid() {
		frame = m.cfg.Style.Invalid
	}
	box := frame.Render(m.renderContent())
	if m.cfg.Label == "" {
		return box
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, m.cfg.Style.Label.Render(m.cfg.Label), box)
}

func (m Model) renderContent() string {
	st := m.cfg.Style
	cells := m.f.State().Cells
	cur := m.f.Cursor()

	var sb strings.Builder
	for i, c := range cells {
		cellStyle := st.Input
		switch {
		case !c.IsEditable:
			cellStyle = st.Literal
		case !c.IsUserInput:
			cellStyle = st.Placeholder
		}
		if m.focused && i == cur.Position {
			cellStyle = m.cursorStyle(cur.Mode).Inherit(cellStyle)
		}
		sb.WriteString(cellStyle.Render(cellText(c.DisplayValue)))
	}
	// An insert cursor past the last cell.
	if m.focused && cur.Position >= len(cells) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

// cellText puts zero-width clusters, such as a lone combining mark, on a
// dotted circle so every cell occupies at least one column.
func cellText(display string) string {
	if display != "" && grapheme.Width(display) == 0 {
		return "\u25cc" + display
	}
	return display
}

func (m Model) cursorStyle(mode field.CursorMode) lipgloss.Style {
	if mode == field.CursorInsert {
		return m.cfg.Style.Cursor
	}
	return m.cfg.Style.CursorReplace
}
