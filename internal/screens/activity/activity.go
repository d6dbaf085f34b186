// Package activity shows recent learner actions from the activity log.
package activity

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlcoach/internal/router"
	"github.com/abhisek/sqlcoach/internal/screen"
	"github.com/abhisek/sqlcoach/internal/store"
	"github.com/abhisek/sqlcoach/internal/ui/layout"
	"github.com/abhisek/sqlcoach/internal/ui/theme"
)

// Limit is the number of events loaded.
const Limit = 50

type activityLoadedMsg struct {
	Events []store.LessonEvent
	Err    error
}

// ActivityScreen lists recent activity, newest first.
type ActivityScreen struct {
	eventRepo   store.EventRepo
	sessionID   string
	onlySession bool

	events   []store.LessonEvent
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*ActivityScreen)(nil)
var _ screen.KeyHintProvider = (*ActivityScreen)(nil)

// New creates an activity screen. sessionID is the running session, used
// by the "this session only" filter.
func New(eventRepo store.EventRepo, sessionID string) *ActivityScreen {
	return &ActivityScreen{
		eventRepo: eventRepo,
		sessionID: sessionID,
		expanded:  make(map[int]bool),
	}
}

func (s *ActivityScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ActivityScreen) load() tea.Cmd {
	opts := store.QueryOpts{Limit: Limit}
	if s.onlySession {
		opts.SessionID = s.sessionID
	}
	repo := s.eventRepo
	return func() tea.Msg {
		events, err := repo.RecentLessonEvents(context.Background(), opts)
		return activityLoadedMsg{Events: events, Err: err}
	}
}

func (s *ActivityScreen) Title() string {
	if s.onlySession {
		return "Activity (this session)"
	}
	return "Activity"
}

func (s *ActivityScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "s", Description: "This session"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ActivityScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case activityLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.events = msg.Events
		}
		s.selected = 0
		s.expanded = make(map[int]bool)
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		case "s":
			s.onlySession = !s.onlySession
			s.loaded = false
			return s, s.load()
		}
	}
	return s, nil
}

func (s *ActivityScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading activity...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No activity yet. Run a query!")
	}

	var lines []string
	lines = append(lines, "")
	selectedLine := 0

	for i, e := range s.events {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
			selectedLine = len(lines)
		}

		mark := " "
		if e.Matched {
			mark = "✓"
		}
		detail := strings.Join(strings.Fields(e.Detail), " ")
		line := fmt.Sprintf("%s%s  %-5s  %-10s %s  %s",
			prefix,
			e.Timestamp.Local().Format("Jan 02 15:04:05"),
			e.LessonID,
			e.Action,
			mark,
			detail,
		)
		if w := width - 4; w > 1 && len([]rune(line)) > w {
			line = string([]rune(line)[:w-1]) + "…"
		}

		style := lipgloss.NewStyle().Foreground(actionColor(e))
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		lines = append(lines, "  "+style.Render(line))

		if s.expanded[i] {
			dim := lipgloss.NewStyle().Foreground(theme.TextDim)
			lines = append(lines, dim.Render(fmt.Sprintf("      session %s  ·  #%d", e.SessionID, e.Sequence)))
			if e.Detail != "" {
				body := lipgloss.NewStyle().Width(max(width-8, 10)).Foreground(theme.Text).Render(e.Detail)
				for _, l := range strings.Split(body, "\n") {
					lines = append(lines, "      "+l)
				}
			}
		}
	}

	// Keep the selected row visible.
	start := 0
	if height > 0 && selectedLine >= height {
		start = selectedLine - height + 1
	}
	lines = lines[start:]
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func actionColor(e store.LessonEvent) color.Color {
	switch {
	case e.Matched:
		return theme.Success
	case e.Action == "run_error":
		return theme.Error
	case e.Action == "hint" || e.Action == "next" || e.Action == "answer":
		return theme.Warning
	default:
		return theme.Text
	}
}
