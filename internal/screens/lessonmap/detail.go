package lessonmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlcoach/internal/curriculum"
	"github.com/abhisek/sqlcoach/internal/screen"
	"github.com/abhisek/sqlcoach/internal/ui/components"
	"github.com/abhisek/sqlcoach/internal/ui/layout"
	"github.com/abhisek/sqlcoach/internal/ui/theme"
)

// LessonDetailScreen previews a lesson without switching to it.
type LessonDetailScreen struct {
	lesson curriculum.Lesson
	phase  curriculum.Phase
	state  State
}

var _ screen.Screen = (*LessonDetailScreen)(nil)
var _ screen.KeyHintProvider = (*LessonDetailScreen)(nil)

func newLessonDetail(lesson curriculum.Lesson, phase curriculum.Phase, state State) *LessonDetailScreen {
	return &LessonDetailScreen{lesson: lesson, phase: phase, state: state}
}

func (d *LessonDetailScreen) Init() tea.Cmd { return nil }
func (d *LessonDetailScreen) Title() string {
	return fmt.Sprintf("Lesson %s: %s", d.lesson.ID, d.lesson.Title)
}

func (d *LessonDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return d, Jump(d.lesson.ID)
	}
	return d, nil
}

func (d *LessonDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start lesson"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *LessonDetailScreen) View(width, height int) string {
	l := d.lesson
	contentWidth := min(width-8, 70)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s  Lesson %s: %s", d.state.Icon(), l.ID, l.Title)))
	b.WriteString("\n")
	label := d.state.Label()
	if label == "" {
		label = "Not started"
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Phase %d: %s  ·  %s", d.phase.ID, d.phase.Title, label)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		PaddingLeft(2).
		Render(components.RenderMarkup(strings.TrimRight(l.Concept, "\n"))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Challenge"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(theme.Text).
		PaddingLeft(2).
		Render(l.Challenge))
	b.WriteString("\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d hints  ·  %d solution steps", len(l.Hints), len(l.SolutionSteps))))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}
