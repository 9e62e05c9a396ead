package styles

import "github.com/charmbracelet/lipgloss"

// FrameStyle returns the toast border style. accent overrides the border
// color; hovered toasts get the focus color instead.
func FrameStyle(accent lipgloss.Color, hovered bool) lipgloss.Style {
	border := T().Border
	switch {
	case hovered:
		border = T().BorderFocus
	case accent != "":
		border = accent
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
