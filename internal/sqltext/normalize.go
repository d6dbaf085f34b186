// Package sqltext holds lexical helpers over raw SQL strings. Nothing here
// parses SQL; all checks are plain text comparisons.
package sqltext

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes SQL text for answer comparison: lowercase,
// trailing statement terminators removed, whitespace runs collapsed.
func Normalize(sql string) string {
	s := strings.ToLower(sql)
	s = strings.TrimRightFunc(s, func(r rune) bool {
		return r == ';' || unicode.IsSpace(r)
	})
	return strings.Join(strings.Fields(s), " ")
}

// Matches reports whether two SQL strings are equal after normalization.
func Matches(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
