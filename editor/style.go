package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Label lipgloss.Style

	// Input is used for user input cells, Placeholder for editable cells
	// still showing their default glyph, Literal for non-editable cells.
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Literal     lipgloss.Style

	// Cursor marks the cell under an insert cursor, CursorReplace the cell
	// a replace cursor will overwrite.
	Cursor        lipgloss.Style
	CursorReplace lipgloss.Style

	// Valid and Invalid frame the cells depending on field validity.
	Valid   lipgloss.Style
	Invalid lipgloss.Style
}

func DefaultStyle() Style {
	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return Style{
		Label:         lipgloss.NewStyle().Bold(true).PaddingRight(1),
		Input:         lipgloss.NewStyle(),
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Literal:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		CursorReplace: lipgloss.NewStyle().Underline(true).Bold(true),
		Valid:         frame.BorderForeground(lipgloss.Color("240")),
		Invalid:       frame.BorderForeground(lipgloss.Color("160")),
	}
}
