// Package command turns a line of learner input into a typed command.
package command

import "strings"

// Kind identifies a parsed command.
type Kind int

const (
	Empty Kind = iota
	Run
	Hint
	Next
	Answer
	Explain
	Schema
	Tables
	Lesson
	Progress
	Skip
	Reset
	Help
	Clear
	Quit
	Usage
	Unknown
)

var kindNames = map[Kind]string{
	Empty:    "empty",
	Run:      "run",
	Hint:     "hint",
	Next:     "next",
	Answer:   "answer",
	Explain:  "explain",
	Schema:   "schema",
	Tables:   "tables",
	Lesson:   "lesson",
	Progress: "progress",
	Skip:     "skip",
	Reset:    "reset",
	Help:     "help",
	Clear:    "clear",
	Quit:     "quit",
	Usage:    "usage",
	Unknown:  "unknown",
}

// String returns the canonical command name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Command is one line of parsed input.
type Command struct {
	Kind Kind
	// Arg holds the SQL for Run, the lesson ID for Lesson, and the
	// offending keyword for Usage.
	Arg string
	// Implicit is set when Run was inferred from bare SQL.
	Implicit bool
	Raw      string
}

// keywords maps exact, case-insensitive inputs to argument-free commands.
var keywords = map[string]Kind{
	"hint":     Hint,
	"stuck":    Hint,
	"help me":  Hint,
	"next":     Next,
	"answer":   Answer,
	"solution": Answer,
	"explain":  Explain,
	"schema":   Schema,
	"tables":   Tables,
	"progress": Progress,
	"skip":     Skip,
	"reset":    Reset,
	"help":     Help,
	"?":        Help,
	"clear":    Clear,
	"cls":      Clear,
	"quit":     Quit,
	"exit":     Quit,
	"q":        Quit,
}

// Parse classifies a single input line.
func Parse(line string) Command {
	raw := line
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Kind: Empty, Raw: raw}
	}
	lower := strings.ToLower(line)

	if k, ok := keywords[lower]; ok {
		return Command{Kind: k, Raw: raw}
	}

	if arg, ok := argument(line, "run"); ok {
		if arg == "" {
			return Command{Kind: Usage, Arg: "run", Raw: raw}
		}
		return Command{Kind: Run, Arg: arg, Raw: raw}
	}
	if arg, ok := argument(line, "lesson"); ok {
		if arg == "" {
			return Command{Kind: Usage, Arg: "lesson", Raw: raw}
		}
		return Command{Kind: Lesson, Arg: arg, Raw: raw}
	}

	if LooksLikeSQL(line) {
		return Command{Kind: Run, Arg: line, Implicit: true, Raw: raw}
	}
	return Command{Kind: Unknown, Arg: line, Raw: raw}
}

// argument reports whether line starts with the keyword (case-insensitive)
// followed by whitespace or end of input, and returns the trimmed rest.
func argument(line, keyword string) (string, bool) {
	if len(line) < len(keyword) || !strings.EqualFold(line[:len(keyword)], keyword) {
		return "", false
	}
	rest := line[len(keyword):]
	if rest == "" {
		return "", true
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return strings.TrimSpace(rest), true
}
