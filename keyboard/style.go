package keyboard

import "github.com/charmbracelet/lipgloss"

// Style controls how keys are drawn. Every style must render a label on a
// single line; mouse hit-testing assumes one terminal row per keyboard row.
type Style struct {
	Key      lipgloss.Style
	Action   lipgloss.Style
	Selected lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Key:      lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("237")),
		Action:   lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("239")).Bold(true),
		Selected: lipgloss.NewStyle().Padding(0, 1).Reverse(true),
	}
}
