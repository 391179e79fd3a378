package form

import "github.com/charmbracelet/lipgloss"

type Style struct {
	Title lipgloss.Style

	// Keyboard frames the keyboard; KeyboardActive is used while it has
	// focus. Frames must have the same size.
	Keyboard       lipgloss.Style
	KeyboardActive lipgloss.Style

	Log   lipgloss.Style
	Toast lipgloss.Style
}

func DefaultStyle() Style {
	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	return Style{
		Title:          lipgloss.NewStyle().Bold(true).Underline(true).MarginBottom(1),
		Keyboard:       frame.BorderForeground(lipgloss.Color("240")),
		KeyboardActive: frame.BorderForeground(lipgloss.Color("63")),
		Log:            lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Toast: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 2),
	}
}
