package coach

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/sqlcoach/internal/coach"
	"github.com/abhisek/sqlcoach/internal/dataset"
	"github.com/abhisek/sqlcoach/internal/ui/components"
	"github.com/abhisek/sqlcoach/internal/ui/theme"
)

const maxPanelWidth = 72

func panelWidth(width int) int {
	return max(min(width, maxPanelWidth), 20)
}

func dim(s string) string {
	return theme.Dim.Render(s)
}

func divider(width int) string {
	return lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", panelWidth(width)))
}

// guide renders a dim next-action line between dividers.
func guide(width int, text string) string {
	return divider(width) + "\n" + dim("→ "+text) + "\n" + divider(width)
}

func renderEcho(input string) string {
	return theme.Prompt.Render("sql> ") + theme.Dim.Render(input)
}

func renderBusy() string {
	return dim("running...")
}

func renderWelcome(width int) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Welcome to SQL Coach!")
	body := "This tool will help you master SQL for your Google Ads interview.\n" +
		"Work through lessons, get hints when stuck, and see solutions step-by-step."
	return title + "\n\n" + lipgloss.NewStyle().Width(panelWidth(width)).Render(body) + "\n\n" +
		dim("Type 'help' anytime to see all commands.")
}

// RenderOutcome renders one session outcome for a terminal of the given
// width. maxCellWidth truncates result table cells.
func RenderOutcome(out sess.Outcome, width, maxCellWidth int) string {
	body := renderBody(out, width, maxCellWidth)
	if out.Warning != "" {
		warn := theme.Caution.Render("! " + out.Warning)
		if body == "" {
			return warn
		}
		return body + "\n" + warn
	}
	return body
}

func renderBody(out sess.Outcome, width, maxCellWidth int) string {
	pw := panelWidth(width)

	switch out.Kind {
	case sess.KindLesson:
		return renderLesson(out, width)

	case sess.KindLessonMissing:
		return components.Panel("ERROR",
			fmt.Sprintf("Lesson '%s' not found. Use 'lesson X.Y' to pick another.", out.Text),
			theme.Error, pw)

	case sess.KindQueryResult:
		var b strings.Builder
		b.WriteString(theme.Correct.Render("Query executed successfully!"))
		b.WriteString("\n\n")
		b.WriteString(components.NewResultTable(out.Result, maxCellWidth).View())
		if out.Matched {
			followUp := out.FollowUp
			if followUp == "" {
				followUp = "Try the next lesson!"
			}
			msg := "Perfect! That matches the expected solution!\n\n" +
				theme.Caution.Render("Follow-up:") + " " + followUp
			b.WriteString("\n\n")
			b.WriteString(components.Panel("SUCCESS", msg, theme.Success, pw))
		}
		return b.String()

	case sess.KindQueryError:
		return components.Panel("ERROR", "SQL Error:\n"+out.Text, theme.Error, pw)

	case sess.KindHint:
		return components.Panel(fmt.Sprintf("HINT %d of %d", out.Position, out.Total), out.Text, theme.Warning, pw) +
			"\n" + guide(width, "Try again, type 'hint' for next hint, or 'answer' for solution")

	case sess.KindHintsExhausted:
		return theme.Caution.Render("No more hints! Type 'answer' to see the solution.")

	case sess.KindStep:
		text := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(out.Text)
		return components.Panel(fmt.Sprintf("STEP %d of %d", out.Position, out.Total), text, theme.Step, pw) +
			"\n" + guide(width, "Type 'next' for next step, or 'answer' for full solution")

	case sess.KindAnswer:
		answer := components.Panel("FULL SOLUTION", theme.Correct.Render(out.Text), theme.Success, pw) +
			"\n" + guide(width, "Type 'run <sql>' to try it, or 'skip' for next lesson")
		if out.Exhausted {
			return theme.Caution.Render("No more steps! Here's the full solution:") + "\n" + answer
		}
		return answer

	case sess.KindExplain:
		return components.Panel("QUERY EXECUTION ORDER", renderClauses(out), theme.Secondary, pw)

	case sess.KindExplainEmpty:
		return theme.Caution.Render("Run a query first, then type 'explain' to see execution order.")

	case sess.KindSchema:
		return components.Panel("DATABASE SCHEMA", RenderSchema(out.Schema), theme.Secondary, pw)

	case sess.KindTables:
		return RenderTables(out.Tables)

	case sess.KindCurriculumComplete:
		return components.Panel("SUCCESS", "Congratulations! You've completed all lessons!", theme.Success, pw)

	case sess.KindNotFound:
		return components.Panel("ERROR",
			fmt.Sprintf("Lesson '%s' not found. Use format like '1.2' or '3.1'", out.Text),
			theme.Error, pw)

	case sess.KindLessonReset:
		return theme.Correct.Render("Lesson progress reset. Hints and steps start from beginning.")

	case sess.KindProgress:
		return RenderReport(out.Report)

	case sess.KindHelp:
		return components.Panel("COMMANDS", renderHelp(), theme.Secondary, pw)

	case sess.KindUsage:
		return theme.Caution.Render(usage(out.Text))

	case sess.KindUnknown:
		return theme.Caution.Render("Unknown command. Type 'help' for available commands.")

	case sess.KindQuit:
		return theme.Correct.Render("Progress saved! See you next time.")
	}
	return ""
}

func usage(keyword string) string {
	switch keyword {
	case "run":
		return "Usage: run <sql>"
	case "lesson":
		return "Usage: lesson X.Y (e.g., lesson 2.1)"
	}
	return "Usage: " + keyword
}

func renderLesson(out sess.Outcome, width int) string {
	var b strings.Builder
	if out.Report != nil {
		b.WriteString(components.NewProgressBar("Overall Progress", out.Report.Completed, out.Report.Total).View())
		b.WriteString("\n\n")
	}

	l, p := out.Lesson, out.Phase
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Step).Render(fmt.Sprintf("Phase %d: %s", p.ID, p.Title)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("Lesson %s: %s", l.ID, l.Title)))
	b.WriteString("\n")
	b.WriteString(divider(width))
	b.WriteString("\n\n")

	pw := panelWidth(width)
	b.WriteString(components.Panel("CONCEPT", components.RenderMarkup(strings.TrimRight(l.Concept, "\n")), theme.Secondary, pw))
	b.WriteString("\n\n")
	b.WriteString(components.Panel("YOUR CHALLENGE", l.Challenge, theme.Warning, pw))
	b.WriteString("\n")
	b.WriteString(divider(width))
	b.WriteString("\n")
	b.WriteString(dim("Commands: run <sql> │ hint │ next │ answer │ schema │ help"))
	b.WriteString("\n")
	b.WriteString(divider(width))
	return b.String()
}

func renderClauses(out sess.Outcome) string {
	if len(out.Clauses) == 0 {
		return dim("No recognized clauses in:\n" + out.Text)
	}
	nameStyle := lipgloss.NewStyle().Foreground(theme.Info).Bold(true)

	lines := []string{dim("Your query executes in this order:"), ""}
	for i, c := range out.Clauses {
		name := nameStyle.Render(fmt.Sprintf("%-12s", c.Name))
		lines = append(lines, fmt.Sprintf("  %d. %s ← %s", i+1, name, c.Description))
	}
	return strings.Join(lines, "\n")
}

// RenderSchema lists each table's columns with key markers and notes.
func RenderSchema(tables []dataset.Table) string {
	tableStyle := lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	pkStyle := lipgloss.NewStyle().Foreground(theme.Success)
	fkStyle := lipgloss.NewStyle().Foreground(theme.Info)

	var sections []string
	for _, t := range tables {
		lines := []string{tableStyle.Render(t.Name)}
		for _, c := range t.Columns {
			name := fmt.Sprintf("%-20s", c.Name)
			desc := c.Type
			switch c.Key {
			case dataset.KeyPrimary:
				name = pkStyle.Render(name)
				desc += " PRIMARY KEY"
			case dataset.KeyForeign:
				name = fkStyle.Render(name)
				desc += " → " + c.Ref
			}
			if c.Note != "" {
				desc += " (" + c.Note + ")"
			}
			lines = append(lines, "  "+name+" "+desc)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	legend := dim("Legend: ") + pkStyle.Render("PK = Primary Key") + dim(", ") + fkStyle.Render("FK = Foreign Key") +
		"\n" + dim(fmt.Sprintf("Cost columns are in micros (divide by %s for USD)", formatThousands(dataset.MicrosPerUnit)))
	sections = append(sections, legend)
	return strings.Join(sections, "\n\n")
}

// RenderTables lists tables with their live row counts.
func RenderTables(counts []dataset.TableCount) string {
	nameStyle := lipgloss.NewStyle().Foreground(theme.Warning)
	lines := []string{lipgloss.NewStyle().Foreground(theme.Secondary).Render("Available Tables:")}
	for _, tc := range counts {
		lines = append(lines, fmt.Sprintf("  %s - %d rows", nameStyle.Render(fmt.Sprintf("%-20s", tc.Table)), tc.Rows))
	}
	lines = append(lines, "", dim("Type 'schema' for full details"))
	return strings.Join(lines, "\n")
}

// RenderReport renders the progress bar with completed and current lessons.
func RenderReport(r *sess.Report) string {
	if r == nil {
		return ""
	}
	completed := "None yet"
	if len(r.CompletedIDs) > 0 {
		completed = strings.Join(r.CompletedIDs, ", ")
	}
	return lipgloss.NewStyle().Bold(true).Render("Your Progress:") + "\n\n" +
		components.NewProgressBar("Progress", r.Completed, r.Total).View() + "\n\n" +
		dim("Completed lessons: "+completed) + "\n" +
		dim("Current lesson: "+r.Current)
}

var helpRows = []struct {
	usage string
	desc  string
	group int
}{
	{"run <sql>", "Execute SQL query and see results", 0},
	{"hint", "Get a hint (progressive, multiple available)", 1},
	{"next", "Show next part of solution step-by-step", 1},
	{"answer", "Show the full solution", 1},
	{"explain", "Explain execution order of last query", 2},
	{"schema", "Show database schema", 2},
	{"tables", "List all tables", 2},
	{"lesson X.Y", "Jump to specific lesson (e.g., lesson 2.1)", 3},
	{"progress", "Show your overall progress", 3},
	{"skip", "Skip to next lesson", 3},
	{"reset", "Reset hint/step counters for current lesson", 4},
	{"clear", "Clear screen and show current lesson", 4},
	{"quit", "Save progress and exit the coach", 5},
}

func renderHelp() string {
	groupColors := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(theme.Success),
		lipgloss.NewStyle().Foreground(theme.Warning),
		lipgloss.NewStyle().Foreground(theme.Secondary),
		lipgloss.NewStyle().Foreground(theme.Step),
		theme.Dim,
		lipgloss.NewStyle().Foreground(theme.Error),
	}
	lines := make([]string, 0, len(helpRows)+2)
	for _, r := range helpRows {
		lines = append(lines, "  "+groupColors[r.group].Render(fmt.Sprintf("%-12s", r.usage))+"  "+r.desc)
	}
	lines = append(lines, "", dim("Bare SQL (SELECT, WITH, ...) runs like 'run <sql>'."))
	return strings.Join(lines, "\n")
}

func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
