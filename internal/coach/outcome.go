package coach

import (
	"github.com/abhisek/sqlcoach/internal/curriculum"
	"github.com/abhisek/sqlcoach/internal/dataset"
	"github.com/abhisek/sqlcoach/internal/sqltext"
)

// Kind identifies what an Outcome carries.
type Kind int

const (
	KindNone               Kind = iota // blank input
	KindLesson                         // lesson introduction
	KindLessonMissing                  // current lesson id does not resolve
	KindQueryResult                    // statement ran; Result set, Matched maybe
	KindQueryError                     // engine rejected the statement
	KindHint                           // Text is hint Position of Total
	KindHintsExhausted                 // no hints left
	KindStep                           // Text is step Position of Total
	KindAnswer                         // Text is the full answer
	KindExplain                        // Clauses in evaluation order
	KindExplainEmpty                   // no query submitted yet
	KindSchema                         // Schema tables
	KindTables                         // Tables with live row counts
	KindCurriculumComplete             // skip on the final lesson
	KindNotFound                       // Text is the unknown lesson id
	KindLessonReset                    // cursors back to zero
	KindProgress                       // Report filled
	KindHelp                           // command reference
	KindUsage                          // Text is the command missing its argument
	KindUnknown                        // Text is the unrecognized input
	KindQuit                           // caller should stop reading input
)

// Outcome is the render payload produced by every session operation.
type Outcome struct {
	Kind Kind

	Lesson *curriculum.Lesson
	Phase  *curriculum.Phase

	// Position is 1-based; Total is the number of hints or steps.
	Position int
	Total    int
	Text     string

	Result   *dataset.Result
	Matched  bool
	FollowUp string

	// Exhausted marks an answer reached by stepping past the last step.
	Exhausted bool

	Clauses []sqltext.Clause
	Report  *Report
	Tables  []dataset.TableCount
	Schema  []dataset.Table

	// Clear asks the presentation to discard earlier output.
	Clear bool

	// Warning reports a non-fatal problem alongside the outcome.
	Warning string
}

// Report summarizes curriculum progress.
type Report struct {
	Completed    int
	Total        int
	CompletedIDs []string
	Current      string
}
