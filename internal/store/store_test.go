package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter_Monotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		require.NoError(t, err)
		if i > 0 {
			assert.Equal(t, prev+1, n)
		}
		prev = n
	}
}

func TestSequenceCounter_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	first, err := s.seq.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	second, err := s.seq.Next(ctx)
	require.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestLessonEvents_AppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LessonEventData{
		{SessionID: "s1", LessonID: "1.1", Action: "hint"},
		{SessionID: "s1", LessonID: "1.1", Action: "run", Detail: "SELECT 1", Matched: false},
		{SessionID: "s1", LessonID: "1.1", Action: "run", Detail: "SELECT campaign_name FROM campaigns", Matched: true},
		{SessionID: "s2", LessonID: "1.2", Action: "skip"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLessonEvent(ctx, e))
	}

	got, err := repo.RecentLessonEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "skip", got[0].Action, "newest first")
	assert.True(t, got[1].Matched)
	assert.False(t, got[2].Matched)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i].Sequence, got[i-1].Sequence)
	}
	assert.False(t, got[0].Timestamp.IsZero())
}

func TestLessonEvents_Filters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AppendLessonEvent(ctx, LessonEventData{SessionID: "a", LessonID: "1.1", Action: "next"}))
	}
	require.NoError(t, repo.AppendLessonEvent(ctx, LessonEventData{SessionID: "b", LessonID: "2.1", Action: "next"}))

	limited, err := repo.RecentLessonEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	bySession, err := repo.RecentLessonEvents(ctx, QueryOpts{SessionID: "a"})
	require.NoError(t, err)
	assert.Len(t, bySession, 3)

	all, err := repo.RecentLessonEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	oldest := all[len(all)-1].Sequence
	after, err := repo.RecentLessonEvents(ctx, QueryOpts{After: oldest})
	require.NoError(t, err)
	assert.Len(t, after, 3)
}

func TestLessonEventsTable_FollowsEntSchema(t *testing.T) {
	s := openTestStore(t)

	rows, err := s.DB().Query("PRAGMA table_info(lesson_events)")
	require.NoError(t, err)
	defer rows.Close()

	var got []string
	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notNull int
			dflt    any
			pk      int
		)
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk))
		got = append(got, name)
	}
	require.NoError(t, rows.Err())

	want := []string{"id"}
	for _, c := range lessonEventsTable.Columns[1:] {
		want = append(want, c.Name)
	}
	assert.Equal(t, want, got)
	assert.Equal(t, append([]string{"id"}, lessonEventColumns...), got)
}

func TestLessonEventsTable_Indexes(t *testing.T) {
	var names []string
	for _, idx := range lessonEventsTable.Indexes {
		names = append(names, idx.Name)
	}
	assert.ElementsMatch(t, []string{"lessonevent_timestamp", "lessonevent_session_id"}, names)
	assert.Equal(t, "id", lessonEventsTable.PrimaryKey[0].Name)
}

func TestOpen_MigratesTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")
	for i := 0; i < 2; i++ {
		s, err := Open(path)
		require.NoError(t, err, "open #%d", i+1)
		require.NoError(t, s.Close())
	}
}

func TestWithPragmas(t *testing.T) {
	assert.Equal(t,
		"a.db?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)",
		withPragmas("a.db"))
	assert.Contains(t, withPragmas("file:a.db?mode=rwc"), "mode=rwc&_pragma=")
}
