package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlcoach/internal/ui/theme"
)

// ProgressCells is the number of cells in a completion bar.
const ProgressCells = 20

// ProgressBar displays curriculum completion as a block bar.
type ProgressBar struct {
	Label     string
	Completed int
	Total     int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, completed, total int) ProgressBar {
	return ProgressBar{
		Label:     label,
		Completed: completed,
		Total:     total,
	}
}

// Percent returns the whole-number completion percentage.
func (p ProgressBar) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	return p.Completed * 100 / p.Total
}

// Filled returns how many of the bar's cells are filled.
func (p ProgressBar) Filled() int {
	if p.Total <= 0 {
		return 0
	}
	filled := p.Completed * ProgressCells / p.Total
	return min(max(filled, 0), ProgressCells)
}

// View renders the progress bar. The bar is red below a third, amber below
// two thirds and green after that.
func (p ProgressBar) View() string {
	pct := p.Percent()
	color := theme.Error
	switch {
	case pct >= 66:
		color = theme.Success
	case pct >= 33:
		color = theme.Warning
	}

	filled := p.Filled()
	bar := lipgloss.NewStyle().Foreground(color).
		Render(strings.Repeat("█", filled) + strings.Repeat("░", ProgressCells-filled))

	var result string
	if p.Label != "" {
		result = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Label) + ": "
	}
	result += bar + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(" %d%% (%d/%d)", pct, p.Completed, p.Total))
	return result
}
