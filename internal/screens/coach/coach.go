// Package coach is the interactive lesson screen: a scrolling transcript
// of rendered outcomes above a "sql>" prompt.
package coach

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	sess "github.com/abhisek/sqlcoach/internal/coach"
	"github.com/abhisek/sqlcoach/internal/command"
	"github.com/abhisek/sqlcoach/internal/curriculum"
	"github.com/abhisek/sqlcoach/internal/router"
	"github.com/abhisek/sqlcoach/internal/screen"
	"github.com/abhisek/sqlcoach/internal/screens/activity"
	"github.com/abhisek/sqlcoach/internal/screens/lessonmap"
	"github.com/abhisek/sqlcoach/internal/store"
	"github.com/abhisek/sqlcoach/internal/ui/components"
	"github.com/abhisek/sqlcoach/internal/ui/layout"
)

// Session is the part of *coach.Session the screen drives.
type Session interface {
	ID() string
	Catalog() *curriculum.Catalog
	Progress() *store.Progress
	Current() sess.Outcome
	CurrentLesson() (curriculum.Lesson, curriculum.Phase, error)
	Dispatch(ctx context.Context, cmd command.Command) sess.Outcome
}

// Options configures the lesson screen.
type Options struct {
	// MaxCellWidth truncates result table cells.
	MaxCellWidth int
	// Events backs the activity view; nil disables it.
	Events store.EventRepo
}

type entry struct {
	input   string
	outcome sess.Outcome
}

// CoachScreen implements screen.Screen for the lesson prompt.
type CoachScreen struct {
	ctx          context.Context
	session      Session
	events       store.EventRepo
	input        components.PromptInput
	maxCellWidth int

	entries    []entry
	cache      []string
	cacheWidth int

	// scroll counts lines up from the bottom of the transcript.
	scroll    int
	maxScroll int
	page      int

	busy     bool
	quitting bool
	// pendingGoto holds a lesson jump that arrived while busy.
	pendingGoto string
}

var _ screen.Screen = (*CoachScreen)(nil)
var _ screen.KeyHintProvider = (*CoachScreen)(nil)

// New creates the lesson screen.
func New(ctx context.Context, session Session, opts Options) *CoachScreen {
	return &CoachScreen{
		ctx:          ctx,
		session:      session,
		events:       opts.Events,
		input:        components.NewPromptInput("sql> ", "type SQL or 'help'"),
		maxCellWidth: opts.MaxCellWidth,
		page:         10,
	}
}

func (s *CoachScreen) Init() tea.Cmd {
	return tea.Batch(
		s.input.Init(),
		func() tea.Msg {
			return outcomeMsg{Outcome: s.session.Current()}
		},
	)
}

func (s *CoachScreen) Title() string {
	l, _, err := s.session.CurrentLesson()
	if err != nil {
		return "Lesson not found"
	}
	return fmt.Sprintf("Lesson %s: %s", l.ID, l.Title)
}

func (s *CoachScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Run"},
		{Key: "↑/↓", Description: "History"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "F2", Description: "Lessons"},
	}
	if s.events != nil {
		hints = append(hints, layout.KeyHint{Key: "F3", Description: "Activity"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Save & quit"})
}

func (s *CoachScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeMsg:
		return s.handleOutcome(msg)

	case lessonmap.GotoLessonMsg:
		if s.busy {
			s.pendingGoto = msg.LessonID
			return s, nil
		}
		return s.dispatch(command.Parse("lesson " + msg.LessonID))

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return s.submit()
		case "f2":
			m := lessonmap.New(s.session.Catalog(), s.session.Progress())
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: m} }
		case "f3":
			if s.events == nil {
				return s, nil
			}
			a := activity.New(s.events, s.session.ID())
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: a} }
		case "pgup":
			s.scroll = min(s.scroll+s.page, s.maxScroll)
			return s, nil
		case "pgdown":
			s.scroll = max(s.scroll-s.page, 0)
			return s, nil
		}
	}

	if s.quitting {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit parses the prompt line and dispatches it off the update loop.
// Input is ignored while a previous command is still running.
func (s *CoachScreen) submit() (screen.Screen, tea.Cmd) {
	if s.busy || s.quitting {
		return s, nil
	}
	return s.dispatch(command.Parse(s.input.Submit()))
}

func (s *CoachScreen) dispatch(cmd command.Command) (screen.Screen, tea.Cmd) {
	if s.busy || s.quitting || cmd.Kind == command.Empty {
		return s, nil
	}

	s.busy = true
	session := s.session
	ctx := s.ctx
	return s, func() tea.Msg {
		return outcomeMsg{Input: cmd.Raw, Outcome: session.Dispatch(ctx, cmd)}
	}
}

func (s *CoachScreen) handleOutcome(msg outcomeMsg) (screen.Screen, tea.Cmd) {
	s.busy = false
	if msg.Outcome.Clear {
		s.entries = nil
		s.cache = nil
	}
	s.entries = append(s.entries, entry{input: msg.Input, outcome: msg.Outcome})
	s.scroll = 0

	if msg.Outcome.Kind == sess.KindQuit {
		s.quitting = true
		s.pendingGoto = ""
		return s, tea.Quit
	}
	if id := s.pendingGoto; id != "" {
		s.pendingGoto = ""
		return s.dispatch(command.Parse("lesson " + id))
	}
	return s, nil
}

// Quitting reports whether the learner asked to quit.
func (s *CoachScreen) Quitting() bool {
	return s.quitting
}

// transcript renders every entry at the given width, reusing earlier
// renders while the width is unchanged.
func (s *CoachScreen) transcript(width int) []string {
	if width != s.cacheWidth {
		s.cache = nil
		s.cacheWidth = width
	}
	for i := len(s.cache); i < len(s.entries); i++ {
		e := s.entries[i]
		var b strings.Builder
		if i == 0 && !e.outcome.Clear && e.input == "" {
			b.WriteString(renderWelcome(width))
			b.WriteString("\n")
		}
		if e.input != "" {
			b.WriteString(renderEcho(e.input))
			b.WriteString("\n")
		}
		b.WriteString(RenderOutcome(e.outcome, width, s.maxCellWidth))
		s.cache = append(s.cache, b.String())
	}
	return strings.Split(strings.Join(s.cache, "\n\n"), "\n")
}

func (s *CoachScreen) View(width, height int) string {
	inputHeight := 2
	area := max(height-inputHeight, 1)
	s.page = max(area/2, 1)

	lines := s.transcript(width - 2)
	s.maxScroll = max(len(lines)-area, 0)
	s.scroll = min(s.scroll, s.maxScroll)

	end := len(lines) - s.scroll
	start := max(end-area, 0)
	visible := make([]string, 0, area)
	visible = append(visible, lines[start:end]...)
	for len(visible) < area {
		visible = append(visible, "")
	}

	prompt := s.input.View()
	if s.busy {
		prompt = renderBusy()
	}
	return strings.Join(visible, "\n") + "\n\n" + prompt
}
