// Package theme holds the colors and shared styles of the terminal UI.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Warning   = lipgloss.Color("#EAB308") // Amber
	Info      = lipgloss.Color("#38BDF8") // Sky
	Step      = lipgloss.Color("#D946EF") // Fuchsia
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Chrome
var (
	HeaderBar = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(Text).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(Border)

	FooterBar = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(Border)
)

// Text
var (
	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Code = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Caution = lipgloss.NewStyle().
		Foreground(Warning)

	Prompt = lipgloss.NewStyle().
		Foreground(Info).
		Bold(true)
)

// Result tables
var (
	TableBorder = lipgloss.NewStyle().
			Foreground(Info)

	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text).
			Padding(0, 1)

	TableCell = lipgloss.NewStyle().
			Foreground(Text).
			Padding(0, 1)

	TableCellAlt = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 1)

	TableNull = lipgloss.NewStyle().
			Foreground(Border).
			Italic(true).
			Padding(0, 1)
)

// Markup maps the color names usable in lesson text to styles.
var Markup = map[string]lipgloss.Style{
	"cyan":    lipgloss.NewStyle().Foreground(Secondary),
	"yellow":  lipgloss.NewStyle().Foreground(Warning),
	"green":   lipgloss.NewStyle().Foreground(Success),
	"red":     lipgloss.NewStyle().Foreground(Error),
	"magenta": lipgloss.NewStyle().Foreground(Step),
	"blue":    lipgloss.NewStyle().Foreground(Info),
	"dim":     lipgloss.NewStyle().Foreground(TextDim),
	"bold":    lipgloss.NewStyle().Bold(true),
}
