package command

import "strings"

// sqlKeywords are the DML/DQL words that mark input as SQL.
var sqlKeywords = []string{"select", "with", "insert", "update", "delete"}

// LooksLikeSQL is a best-effort classifier for bare input: it reports
// whether any recognized keyword appears anywhere in the text, ignoring
// case. Input such as "show me something with joins" is a false positive;
// the engine's error is the feedback in that case.
func LooksLikeSQL(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range sqlKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
