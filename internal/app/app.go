// Package app hosts the Bubble Tea program: a router of screens framed by
// a header showing curriculum progress and a footer of key hints.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlcoach/internal/coach"
	"github.com/abhisek/sqlcoach/internal/logger"
	"github.com/abhisek/sqlcoach/internal/router"
	"github.com/abhisek/sqlcoach/internal/screen"
	lessonscreen "github.com/abhisek/sqlcoach/internal/screens/coach"
	"github.com/abhisek/sqlcoach/internal/screens/welcome"
	"github.com/abhisek/sqlcoach/internal/store"
	"github.com/abhisek/sqlcoach/internal/ui/layout"
)

// Options configures the interactive program.
type Options struct {
	Session *coach.Session
	Logger  *logger.Logger
	// Events backs the in-app activity view; optional.
	Events store.EventRepo

	// MaxCellWidth truncates result table cells.
	MaxCellWidth int
	// SkipWelcome starts directly at the lesson prompt.
	SkipWelcome bool
}

// progressSource reports curriculum completion for the header.
type progressSource interface {
	Report() coach.Outcome
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	progress progressSource
	width    int
	height   int
}

func newAppModel(initial screen.Screen, progress progressSource) AppModel {
	return AppModel{
		router:   router.New(initial),
		progress: progress,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.frame())
	return v
}

// frame renders header, active screen and footer for the current size.
func (m AppModel) frame() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = hp.KeyHints()
		}
	}
	if hints == nil {
		hints = []layout.KeyHint{
			{Key: "any key", Description: "Start"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	completed, total := 0, 0
	if m.progress != nil {
		if r := m.progress.Report().Report; r != nil {
			completed, total = r.Completed, r.Total
		}
	}

	header := layout.RenderHeader(title, completed, total, m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and saves progress when it exits,
// however it exits.
func Run(ctx context.Context, opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("app: session is required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	lessons := func() screen.Screen {
		return lessonscreen.New(ctx, opts.Session, lessonscreen.Options{
			MaxCellWidth: opts.MaxCellWidth,
			Events:       opts.Events,
		})
	}
	var initial screen.Screen
	if opts.SkipWelcome {
		initial = lessons()
	} else {
		initial = welcome.New(lessons)
	}

	p := tea.NewProgram(newAppModel(initial, opts.Session), tea.WithContext(ctx))
	_, runErr := p.Run()
	if runErr != nil {
		log.Error("program exited with error", "error", runErr)
	}

	if err := opts.Session.Save(ctx); err != nil {
		if runErr != nil {
			return runErr
		}
		return fmt.Errorf("save progress: %w", err)
	}
	if runErr != nil {
		return fmt.Errorf("run program: %w", runErr)
	}
	return nil
}
