package components

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Panel renders a titled, bordered box in the given accent color.
func Panel(title, body string, accent color.Color, width int) string {
	head := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(title)
	content := head
	if body != "" {
		content += "\n\n" + body
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(content)
}
