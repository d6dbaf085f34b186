// Package lessonmap lists the curriculum by phase and lets the learner jump
// to any lesson.
package lessonmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlcoach/internal/curriculum"
	"github.com/abhisek/sqlcoach/internal/router"
	"github.com/abhisek/sqlcoach/internal/screen"
	"github.com/abhisek/sqlcoach/internal/store"
	"github.com/abhisek/sqlcoach/internal/ui/layout"
	"github.com/abhisek/sqlcoach/internal/ui/theme"
)

// GotoLessonMsg asks the lesson screen to switch to LessonID.
type GotoLessonMsg struct {
	LessonID string
}

// State is the display state of one lesson.
type State int

const (
	StateOpen State = iota
	StateCurrent
	StateCompleted
)

// Icon returns the row marker for the state.
func (s State) Icon() string {
	switch s {
	case StateCompleted:
		return "✓"
	case StateCurrent:
		return "▶"
	default:
		return "·"
	}
}

// Label returns the right-hand status text for the state.
func (s State) Label() string {
	switch s {
	case StateCompleted:
		return "Completed"
	case StateCurrent:
		return "Current"
	default:
		return ""
	}
}

type rowKind int

const (
	rowPhaseHeader rowKind = iota
	rowLesson
)

type row struct {
	kind   rowKind
	phase  *curriculum.Phase
	lesson *curriculum.Lesson
}

// LessonMapScreen displays the curriculum organized by phase.
type LessonMapScreen struct {
	rows         []row
	cursor       int
	scrollOffset int
	progress     *store.Progress
}

var _ screen.Screen = (*LessonMapScreen)(nil)
var _ screen.KeyHintProvider = (*LessonMapScreen)(nil)

// New creates a lesson map with the cursor on the current lesson.
func New(cat *curriculum.Catalog, progress *store.Progress) *LessonMapScreen {
	phases := cat.Phases()
	var rows []row
	for i := range phases {
		p := &phases[i]
		rows = append(rows, row{kind: rowPhaseHeader, phase: p})
		for j := range p.Lessons {
			rows = append(rows, row{kind: rowLesson, phase: p, lesson: &p.Lessons[j]})
		}
	}

	s := &LessonMapScreen{rows: rows, progress: progress}

	s.cursor = -1
	for i, r := range s.rows {
		if r.kind != rowLesson {
			continue
		}
		if s.cursor < 0 {
			s.cursor = i
		}
		if progress != nil && r.lesson.ID == progress.CurrentLesson {
			s.cursor = i
			break
		}
	}
	s.cursor = max(s.cursor, 0)
	return s
}

func (s *LessonMapScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonMapScreen) Title() string {
	return "Lesson Map"
}

// KeyHints returns the key binding hints for the footer.
func (s *LessonMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Phase"},
		{Key: "Space", Description: "Preview"},
		{Key: "Enter", Description: "Start lesson"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LessonMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case GotoLessonMsg:
		// Coming back from a preview; pass it on to the lesson screen.
		return s, Jump(msg.LessonID)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextPhase()
		case "shift+tab":
			s.prevPhase()
		case "space":
			return s, s.preview()
		case "enter":
			if l := s.Selected(); l != nil {
				return s, Jump(l.ID)
			}
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// Jump pops the current screen and hands GotoLessonMsg to the one below.
func Jump(id string) tea.Cmd {
	return func() tea.Msg {
		return router.PopScreenMsg{Result: GotoLessonMsg{LessonID: id}}
	}
}

// Selected returns the lesson under the cursor.
func (s *LessonMapScreen) Selected() *curriculum.Lesson {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nil
	}
	return s.rows[s.cursor].lesson
}

func (s *LessonMapScreen) preview() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowLesson {
		return nil
	}
	detail := newLessonDetail(*r.lesson, *r.phase, s.state(r.lesson.ID))
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *LessonMapScreen) state(id string) State {
	switch {
	case s.progress == nil:
		return StateOpen
	case s.progress.CurrentLesson == id:
		return StateCurrent
	case s.progress.IsCompleted(id):
		return StateCompleted
	}
	return StateOpen
}

// moveCursor moves the cursor by delta, skipping phase headers.
func (s *LessonMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowLesson {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextPhase jumps the cursor to the first lesson of the next phase.
func (s *LessonMapScreen) nextPhase() {
	current := s.rows[s.cursor].phase.ID
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowLesson && s.rows[i].phase.ID != current {
			s.cursor = i
			return
		}
	}
}

// prevPhase jumps the cursor to the first lesson of the previous phase.
func (s *LessonMapScreen) prevPhase() {
	current := s.rows[s.cursor].phase.ID
	target := -1
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowPhaseHeader && s.rows[i].phase.ID != current {
			target = i
			break
		}
	}
	if target < 0 {
		return
	}
	s.cursor = target
	s.moveCursor(1)
}

// adjustScroll keeps the cursor, and its phase header when possible, in view.
func (s *LessonMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowPhaseHeader {
		headerRow--
	}
	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *LessonMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	// Phase headers take two lines.
	s.adjustScroll(height / 2)

	var lines []string
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		switch r.kind {
		case rowPhaseHeader:
			lines = append(lines, s.renderPhaseHeader(*r.phase, width))
		case rowLesson:
			lines = append(lines, s.renderLessonRow(r, i == s.cursor, width))
		}
	}

	out := strings.Split(strings.Join(lines, "\n"), "\n")
	if len(out) > height {
		out = out[:height]
	}
	return strings.Join(out, "\n")
}

func (s *LessonMapScreen) renderPhaseHeader(p curriculum.Phase, width int) string {
	name := strings.ToUpper(fmt.Sprintf("Phase %d: %s", p.ID, p.Title))
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(name)
}

func (s *LessonMapScreen) renderLessonRow(r row, selected bool, width int) string {
	state := s.state(r.lesson.ID)

	labelWidth := 10
	nameWidth := max(width-4-3-6-labelWidth-6, 10)

	name := r.lesson.Title
	if len([]rune(name)) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	var nameStyle, labelStyle lipgloss.Style
	switch {
	case selected:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case state == StateCompleted:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Success)
	case state == StateCurrent:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Accent)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	default:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		labelStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	return fmt.Sprintf("  %s%s %-5s %s  %s",
		cursor,
		state.Icon(),
		r.lesson.ID,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		labelStyle.Render(fmt.Sprintf("%*s", labelWidth, state.Label())),
	)
}
