package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	SessionID string    // restrict to one session
}

// LessonEventData captures one learner action against a lesson.
type LessonEventData struct {
	SessionID string
	LessonID  string
	Action    string
	Detail    string
	Matched   bool
}

// LessonEvent is a stored LessonEventData with its ordering metadata.
type LessonEvent struct {
	LessonEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to the activity log.
type EventRepo interface {
	// AppendLessonEvent records a learner action.
	AppendLessonEvent(ctx context.Context, data LessonEventData) error

	// RecentLessonEvents returns events newest first.
	RecentLessonEvents(ctx context.Context, opts QueryOpts) ([]LessonEvent, error)
}
