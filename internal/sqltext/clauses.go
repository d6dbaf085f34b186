package sqltext

import "strings"

// Clause is a query clause in logical evaluation order.
type Clause struct {
	Name        string
	Keyword     string
	Description string
}

// evaluationOrder lists recognized clauses in the order a SQL engine
// logically evaluates them.
var evaluationOrder = []Clause{
	{Name: "WITH (CTE)", Keyword: "with ", Description: "Build temporary result sets first"},
	{Name: "FROM", Keyword: "from ", Description: "Load table(s)"},
	{Name: "JOIN", Keyword: "join ", Description: "Combine with other tables"},
	{Name: "WHERE", Keyword: "where ", Description: "Filter individual rows"},
	{Name: "GROUP BY", Keyword: "group by", Description: "Collapse rows into groups"},
	{Name: "HAVING", Keyword: "having ", Description: "Filter groups"},
	{Name: "SELECT", Keyword: "select ", Description: "Compute output columns + aliases"},
	{Name: "DISTINCT", Keyword: "distinct", Description: "Remove duplicates"},
	{Name: "ORDER BY", Keyword: "order by", Description: "Sort results (can use aliases)"},
	{Name: "LIMIT", Keyword: "limit ", Description: "Restrict row count"},
}

// Clauses returns the clauses present in sql, in evaluation order.
// Detection is a case-insensitive substring search, so keywords inside
// string literals or comments are reported too.
func Clauses(sql string) []Clause {
	lower := strings.ToLower(sql)
	var out []Clause
	for _, c := range evaluationOrder {
		if strings.Contains(lower, c.Keyword) {
			out = append(out, c)
		}
	}
	return out
}

// EvaluationOrder returns every recognized clause in evaluation order.
func EvaluationOrder() []Clause {
	out := make([]Clause, len(evaluationOrder))
	copy(out, evaluationOrder)
	return out
}
