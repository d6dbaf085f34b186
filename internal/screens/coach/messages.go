package coach

import sess "github.com/abhisek/sqlcoach/internal/coach"

// outcomeMsg carries the result of a dispatched command back to the screen.
type outcomeMsg struct {
	Input   string
	Outcome sess.Outcome
}
