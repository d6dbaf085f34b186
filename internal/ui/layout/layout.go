// Package layout draws the application chrome around the active screen.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlcoach/internal/ui/theme"
)

// Smallest terminal that fits a lesson panel plus a prompt.
const (
	MinWidth  = 80
	MinHeight = 24
)

const hintSep = "  ·  "

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nSQL Coach needs at least %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the top bar: app name and screen title on the left,
// the completion count on the right. A zero total hides the count.
func RenderHeader(title string, completed, total int, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" SQL Coach")
	if title != "" {
		left += theme.Dim.Render("  │  ") + title
	}

	right := ""
	if total > 0 {
		color := theme.Accent
		if completed >= total {
			color = theme.Success
		}
		right = lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("✓ %d/%d ", completed, total))
	}

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return theme.HeaderBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// RenderFooter renders the key hints on one line. Hints that would overflow
// the width are dropped from the end.
func RenderFooter(hints []KeyHint, width int) string {
	line := " "
	for i, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " + h.Description
		if i > 0 {
			part = hintSep + part
		}
		if lipgloss.Width(line)+lipgloss.Width(part) > width {
			break
		}
		line += part
	}
	return theme.FooterBar.Width(width).Render(line)
}

// RenderFrame stacks header, content and footer into exactly height rows.
// Content is clipped or padded to the rows left between the bars.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	lines := strings.Split(content, "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	body := lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(lines, "\n"))
	if rows == 0 {
		return header + "\n" + footer
	}
	return header + "\n" + body + "\n" + footer
}
