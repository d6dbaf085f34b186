package components

import (
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlcoach/internal/ui/theme"
)

var markupTag = regexp.MustCompile(`\{([a-z]+)\}`)

// RenderMarkup styles text containing {color} ... {reset} tags. Tags
// accumulate until {reset}; unknown tags are left as written.
func RenderMarkup(text string) string {
	var (
		b      strings.Builder
		active []string
		last   int
	)
	for _, m := range markupTag.FindAllStringSubmatchIndex(text, -1) {
		name := text[m[2]:m[3]]
		_, known := theme.Markup[name]
		if !known && name != "reset" {
			continue
		}
		b.WriteString(styleSegment(text[last:m[0]], active))
		last = m[1]
		if name == "reset" {
			active = active[:0]
		} else {
			active = append(active, name)
		}
	}
	b.WriteString(styleSegment(text[last:], active))
	return b.String()
}

// StripMarkup removes known tags, leaving plain text.
func StripMarkup(text string) string {
	return markupTag.ReplaceAllStringFunc(text, func(tag string) string {
		name := tag[1 : len(tag)-1]
		if _, ok := theme.Markup[name]; ok || name == "reset" {
			return ""
		}
		return tag
	})
}

// styleSegment renders each line separately so styling never pads lines.
func styleSegment(s string, active []string) string {
	if s == "" || len(active) == 0 {
		return s
	}
	style := lipgloss.NewStyle()
	// The most recent tag wins for properties set by several tags.
	for i := len(active) - 1; i >= 0; i-- {
		style = style.Inherit(theme.Markup[active[i]])
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
