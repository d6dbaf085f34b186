package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlcoach/internal/router"
	"github.com/abhisek/sqlcoach/internal/screen"
	"github.com/abhisek/sqlcoach/internal/ui/theme"
)

const (
	tickInterval = 50 * time.Millisecond
	// typedQuery is typed out one character per tick.
	typedQuery = "SELECT lesson FROM curriculum ORDER BY phase;"
	typeDur    = time.Duration(len(typedQuery)) * tickInterval
	bannerAt   = typeDur + 250*time.Millisecond
	totalDur   = bannerAt + 500*time.Millisecond
)

const tagline = "Google Ads SQL interview prep, one query at a time"

const dbArt = `  .-~~~~-.
 (        )
 |~-....-~|
 |        |
 |~-....-~|
 |        |
  ~-....-~`

type tickMsg time.Time

// WelcomeScreen is the animated splash shown at startup.
type WelcomeScreen struct {
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a splash screen that replaces itself with the screen built
// by next on the first key press.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{nextFactory: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// typed returns the part of typedQuery shown so far.
func (w *WelcomeScreen) typed() string {
	n := min(int(w.elapsed/tickInterval), len(typedQuery))
	return typedQuery[:n]
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Info).Render(dbArt))
	sections = append(sections, "")

	cursor := " "
	if w.tickCount%10 < 5 {
		cursor = "█"
	}
	line := theme.Prompt.Render("sql> ") + theme.Code.Render(w.typed())
	if w.elapsed < bannerAt {
		line += lipgloss.NewStyle().Foreground(theme.Accent).Render(cursor)
	}
	sections = append(sections, line)

	if w.elapsed >= bannerAt {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(tagline))
	}

	if w.elapsed >= totalDur {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to start"))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
