// Package coach implements the tutoring session: one learner, one current
// lesson, and the hint/step cursors revealed against it.
package coach

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/sqlcoach/internal/command"
	"github.com/abhisek/sqlcoach/internal/curriculum"
	"github.com/abhisek/sqlcoach/internal/dataset"
	"github.com/abhisek/sqlcoach/internal/logger"
	"github.com/abhisek/sqlcoach/internal/sqltext"
	"github.com/abhisek/sqlcoach/internal/store"
)

// QueryRunner executes learner SQL against the practice dataset.
type QueryRunner interface {
	Query(ctx context.Context, sql string) (*dataset.Result, error)
	TableCounts(ctx context.Context) ([]dataset.TableCount, error)
}

// Options configures a Session.
type Options struct {
	Catalog  *curriculum.Catalog
	Queries  QueryRunner
	Progress store.ProgressRepo

	// Events is optional; when set every dispatched command is recorded.
	Events store.EventRepo
	Logger *logger.Logger

	// SessionID defaults to a random UUID.
	SessionID string
	Now       func() time.Time
}

// Session is the state machine behind the interactive prompt. Commands are
// serialized; readers see the state as of the last finished command.
type Session struct {
	mu   sync.Mutex
	view atomic.Pointer[snapshot]

	catalog  *curriculum.Catalog
	queries  QueryRunner
	repo     store.ProgressRepo
	events   store.EventRepo
	log      *logger.Logger
	id       string
	now      func() time.Time
	progress *store.Progress

	hintCursor int
	stepCursor int
	lastQuery  string
	hasQuery   bool
}

// snapshot is an immutable copy of the session state published after
// every command.
type snapshot struct {
	progress   *store.Progress
	hintCursor int
	stepCursor int
	lastQuery  string
	hasQuery   bool
}

// New loads saved progress (or starts fresh at the first lesson) and
// returns a session with both cursors at zero.
func New(ctx context.Context, opts Options) (*Session, error) {
	if opts.Catalog == nil {
		return nil, errors.New("coach: catalog is required")
	}
	if opts.Queries == nil {
		return nil, errors.New("coach: query runner is required")
	}
	if opts.Progress == nil {
		return nil, errors.New("coach: progress repo is required")
	}

	s := &Session{
		catalog: opts.Catalog,
		queries: opts.Queries,
		repo:    opts.Progress,
		events:  opts.Events,
		log:     opts.Logger,
		id:      opts.SessionID,
		now:     opts.Now,
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.log = s.log.With("session_id", s.id)

	p, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if p == nil {
		p = store.NewProgress(s.catalog.First(), s.now())
		s.log.Info("starting fresh progress", "lesson", p.CurrentLesson)
	} else if !s.catalog.Has(p.CurrentLesson) {
		s.log.Warn("saved lesson does not resolve", "lesson", p.CurrentLesson)
	}
	s.progress = p
	s.publish()
	return s, nil
}

func (s *Session) publish() {
	s.view.Store(&snapshot{
		progress:   s.progress.Clone(),
		hintCursor: s.hintCursor,
		stepCursor: s.stepCursor,
		lastQuery:  s.lastQuery,
		hasQuery:   s.hasQuery,
	})
}

// locked runs fn as one command and publishes the resulting state.
func (s *Session) locked(fn func() Outcome) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := fn()
	s.publish()
	return out
}

// ID returns the session identifier used in the activity log.
func (s *Session) ID() string { return s.id }

// HintCursor returns the number of hints revealed for the current lesson.
func (s *Session) HintCursor() int { return s.view.Load().hintCursor }

// StepCursor returns the number of solution steps revealed for the current lesson.
func (s *Session) StepCursor() int { return s.view.Load().stepCursor }

// LastQuery returns the most recently submitted SQL, if any.
func (s *Session) LastQuery() (string, bool) {
	v := s.view.Load()
	return v.lastQuery, v.hasQuery
}

// Progress returns a copy of the progress record.
func (s *Session) Progress() *store.Progress { return s.view.Load().progress.Clone() }

// Catalog returns the lesson catalog the session navigates.
func (s *Session) Catalog() *curriculum.Catalog { return s.catalog }

// CurrentLesson resolves the current lesson.
func (s *Session) CurrentLesson() (curriculum.Lesson, curriculum.Phase, error) {
	return s.catalog.Get(s.view.Load().progress.CurrentLesson)
}

func (s *Session) lesson() (curriculum.Lesson, curriculum.Phase, error) {
	return s.catalog.Get(s.progress.CurrentLesson)
}

// Save persists the progress record.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx)
}

func (s *Session) save(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.progress); err != nil {
		s.log.Error("save progress failed", "error", err)
		return err
	}
	return nil
}

// persist saves progress and converts a failure into a warning string.
func (s *Session) persist(ctx context.Context) string {
	if err := s.save(ctx); err != nil {
		return fmt.Sprintf("Progress could not be saved: %v", err)
	}
	return ""
}

func (s *Session) resetCursors() {
	s.hintCursor = 0
	s.stepCursor = 0
}

// missing is returned by lesson-dependent operations when the current id
// does not resolve.
func (s *Session) missing() Outcome {
	return Outcome{Kind: KindLessonMissing, Text: s.progress.CurrentLesson}
}

// Current returns the introduction payload for the current lesson.
func (s *Session) Current() Outcome { return s.locked(s.current) }

func (s *Session) current() Outcome {
	l, p, err := s.lesson()
	if err != nil {
		return s.missing()
	}
	return Outcome{Kind: KindLesson, Lesson: &l, Phase: &p, Report: s.report()}
}

// Submit executes sql and compares it to the current lesson's answer.
func (s *Session) Submit(ctx context.Context, sql string) Outcome {
	return s.locked(func() Outcome { return s.submit(ctx, sql) })
}

func (s *Session) submit(ctx context.Context, sql string) Outcome {
	s.lastQuery = sql
	s.hasQuery = true

	res, err := s.queries.Query(ctx, sql)
	if err != nil {
		s.log.Debug("query failed", "error", err)
		return Outcome{Kind: KindQueryError, Text: err.Error()}
	}

	out := Outcome{Kind: KindQueryResult, Result: res}
	l, _, lerr := s.lesson()
	if lerr != nil {
		out.Warning = fmt.Sprintf("Lesson %q not found; the result was not checked.", s.progress.CurrentLesson)
		return out
	}
	if sqltext.Matches(sql, l.Answer) {
		out.Matched = true
		out.FollowUp = l.FollowUp
		out.Lesson = &l
	}
	return out
}

// Hint reveals the next hint for the current lesson.
func (s *Session) Hint() Outcome { return s.locked(s.hint) }

func (s *Session) hint() Outcome {
	l, _, err := s.lesson()
	if err != nil {
		return s.missing()
	}
	if s.hintCursor >= len(l.Hints) {
		return Outcome{Kind: KindHintsExhausted, Total: len(l.Hints)}
	}
	out := Outcome{
		Kind:     KindHint,
		Text:     l.Hints[s.hintCursor],
		Position: s.hintCursor + 1,
		Total:    len(l.Hints),
	}
	s.hintCursor++
	s.progress.RecordHint(l.ID)
	return out
}

// NextStep reveals the next solution step, or the full answer once every
// step has been shown.
func (s *Session) NextStep() Outcome { return s.locked(s.nextStep) }

func (s *Session) nextStep() Outcome {
	l, _, err := s.lesson()
	if err != nil {
		return s.missing()
	}
	if s.stepCursor >= len(l.SolutionSteps) {
		return Outcome{Kind: KindAnswer, Text: l.Answer, Exhausted: true}
	}
	out := Outcome{
		Kind:     KindStep,
		Text:     l.SolutionSteps[s.stepCursor],
		Position: s.stepCursor + 1,
		Total:    len(l.SolutionSteps),
	}
	s.stepCursor++
	return out
}

// Answer returns the full answer without moving either cursor.
func (s *Session) Answer() Outcome { return s.locked(s.answer) }

func (s *Session) answer() Outcome {
	l, _, err := s.lesson()
	if err != nil {
		return s.missing()
	}
	return Outcome{Kind: KindAnswer, Text: l.Answer}
}

// Explain lists the clauses of the last submitted query in evaluation order.
func (s *Session) Explain() Outcome { return s.locked(s.explain) }

func (s *Session) explain() Outcome {
	if !s.hasQuery {
		return Outcome{Kind: KindExplainEmpty}
	}
	return Outcome{Kind: KindExplain, Text: s.lastQuery, Clauses: sqltext.Clauses(s.lastQuery)}
}

// Skip marks the current lesson completed and advances to the next one.
// On the final lesson it reports completion and stays put.
func (s *Session) Skip(ctx context.Context) Outcome {
	return s.locked(func() Outcome { return s.skip(ctx) })
}

func (s *Session) skip(ctx context.Context) Outcome {
	l, _, err := s.lesson()
	if err != nil {
		return s.missing()
	}
	s.progress.MarkCompleted(l.ID)

	next, ok := s.catalog.Next(l.ID)
	if !ok {
		warn := s.persist(ctx)
		s.log.Info("curriculum complete", "lesson", l.ID)
		return Outcome{Kind: KindCurriculumComplete, Report: s.report(), Warning: warn}
	}

	s.progress.CurrentLesson = next
	s.resetCursors()
	warn := s.persist(ctx)
	s.log.Info("lesson skipped", "from", l.ID, "to", next)

	out := s.current()
	out.Clear = true
	out.Warning = warn
	return out
}

// Goto moves to lesson id without marking the current one completed.
// Unknown ids leave the session untouched.
func (s *Session) Goto(ctx context.Context, id string) Outcome {
	return s.locked(func() Outcome { return s.gotoLesson(ctx, id) })
}

func (s *Session) gotoLesson(ctx context.Context, id string) Outcome {
	if !s.catalog.Has(id) {
		return Outcome{Kind: KindNotFound, Text: id}
	}
	from := s.progress.CurrentLesson
	s.progress.CurrentLesson = id
	s.resetCursors()
	warn := s.persist(ctx)
	s.log.Info("lesson changed", "from", from, "to", id)

	out := s.current()
	out.Clear = true
	out.Warning = warn
	return out
}

// Reset rewinds both cursors for the current lesson.
func (s *Session) Reset() Outcome { return s.locked(s.reset) }

func (s *Session) reset() Outcome {
	s.resetCursors()
	return Outcome{Kind: KindLessonReset}
}

// Report returns the progress summary payload as of the last command.
func (s *Session) Report() Outcome {
	return Outcome{Kind: KindProgress, Report: reportOf(s.view.Load().progress, s.catalog.Total())}
}

func (s *Session) report() *Report {
	return reportOf(s.progress, s.catalog.Total())
}

func reportOf(p *store.Progress, total int) *Report {
	return &Report{
		Completed:    len(p.CompletedLessons),
		Total:        total,
		CompletedIDs: slices.Clone(p.CompletedLessons),
		Current:      p.CurrentLesson,
	}
}

// Tables lists the dataset tables with live row counts.
func (s *Session) Tables(ctx context.Context) Outcome {
	return s.locked(func() Outcome { return s.tables(ctx) })
}

func (s *Session) tables(ctx context.Context) Outcome {
	counts, err := s.queries.TableCounts(ctx)
	if err != nil {
		return Outcome{Kind: KindQueryError, Text: err.Error()}
	}
	return Outcome{Kind: KindTables, Tables: counts}
}

// Schema describes the dataset tables.
func (s *Session) Schema() Outcome {
	return Outcome{Kind: KindSchema, Schema: dataset.Schema()}
}

// Quit saves progress unconditionally.
func (s *Session) Quit(ctx context.Context) Outcome {
	return s.locked(func() Outcome { return s.quit(ctx) })
}

func (s *Session) quit(ctx context.Context) Outcome {
	warn := s.persist(ctx)
	s.log.Info("session ended", "lesson", s.progress.CurrentLesson)
	return Outcome{Kind: KindQuit, Warning: warn}
}

// Dispatch applies a parsed command and records it in the activity log.
func (s *Session) Dispatch(ctx context.Context, cmd command.Command) Outcome {
	if cmd.Kind == command.Empty {
		return Outcome{Kind: KindNone}
	}
	return s.locked(func() Outcome { return s.dispatch(ctx, cmd) })
}

func (s *Session) dispatch(ctx context.Context, cmd command.Command) Outcome {
	lessonID := s.progress.CurrentLesson

	var out Outcome
	switch cmd.Kind {
	case command.Empty:
		return Outcome{Kind: KindNone}
	case command.Run:
		out = s.submit(ctx, cmd.Arg)
	case command.Hint:
		out = s.hint()
	case command.Next:
		out = s.nextStep()
	case command.Answer:
		out = s.answer()
	case command.Explain:
		out = s.explain()
	case command.Schema:
		out = s.Schema()
	case command.Tables:
		out = s.tables(ctx)
	case command.Lesson:
		out = s.gotoLesson(ctx, cmd.Arg)
	case command.Progress:
		out = Outcome{Kind: KindProgress, Report: s.report()}
	case command.Skip:
		out = s.skip(ctx)
	case command.Reset:
		out = s.reset()
	case command.Help:
		out = Outcome{Kind: KindHelp}
	case command.Clear:
		s.resetCursors()
		out = s.current()
		out.Clear = true
	case command.Quit:
		out = s.quit(ctx)
	case command.Usage:
		out = Outcome{Kind: KindUsage, Text: cmd.Arg}
	default:
		out = Outcome{Kind: KindUnknown, Text: cmd.Arg}
	}

	s.record(ctx, lessonID, cmd, out)
	return out
}

// record appends the command to the activity log. Failures are logged only.
func (s *Session) record(ctx context.Context, lessonID string, cmd command.Command, out Outcome) {
	if s.events == nil {
		return
	}
	data := store.LessonEventData{
		SessionID: s.id,
		LessonID:  lessonID,
		Action:    cmd.Kind.String(),
		Matched:   out.Matched,
	}
	switch cmd.Kind {
	case command.Run, command.Lesson, command.Unknown:
		data.Detail = cmd.Arg
	}
	if cmd.Kind == command.Run && out.Kind == KindQueryError {
		data.Action = "run_error"
	}
	if err := s.events.AppendLessonEvent(ctx, data); err != nil {
		s.log.Warn("record activity failed", "error", err, "action", data.Action)
	}
}
