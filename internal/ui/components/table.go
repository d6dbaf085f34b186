package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/sqlcoach/internal/dataset"
	"github.com/abhisek/sqlcoach/internal/ui/theme"
)

// ResultTable renders query results as a bordered table.
type ResultTable struct {
	Columns []string
	Rows    [][]any
	// MaxCellWidth truncates longer cell text; zero disables truncation.
	MaxCellWidth int
}

// NewResultTable builds a table view of a query result.
func NewResultTable(res *dataset.Result, maxCellWidth int) ResultTable {
	return ResultTable{Columns: res.Columns, Rows: res.Rows, MaxCellWidth: maxCellWidth}
}

// View renders the table followed by a row count line. A result without
// rows renders a single dim notice.
func (r ResultTable) View() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	if len(r.Columns) == 0 {
		return dim.Render("Statement executed (no result set)")
	}
	if len(r.Rows) == 0 {
		return dim.Render("(No results)")
	}

	headers := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		headers[i] = truncate(c, r.MaxCellWidth)
	}

	nulls := make([][]bool, len(r.Rows))
	cells := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		nulls[i] = make([]bool, len(r.Columns))
		cells[i] = make([]string, len(r.Columns))
		for j := range r.Columns {
			if j >= len(row) {
				continue
			}
			if dataset.IsNull(row[j]) {
				nulls[i][j] = true
			}
			cells[i][j] = truncate(dataset.FormatValue(row[j]), r.MaxCellWidth)
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.TableBorder).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return theme.TableHeader
			case row >= 0 && row < len(nulls) && col < len(nulls[row]) && nulls[row][col]:
				return theme.TableNull
			case row%2 == 1:
				return theme.TableCellAlt
			default:
				return theme.TableCell
			}
		})

	return t.String() + "\n" + dim.Render(fmt.Sprintf("%d row(s) returned", len(r.Rows)))
}

func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
