package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sqlcoach/internal/store"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func dataDir(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	for _, k := range []string{"SQLCOACH_DATA_DIR", "SQLCOACH_DB", "SQLCOACH_PROGRESS", "SQLCOACH_EVENTS_DB", "SQLCOACH_LOG"} {
		t.Setenv(k, "")
	}
	return t.TempDir()
}

func TestSetupAndQuery(t *testing.T) {
	dir := dataDir(t)

	out, err := execute(t, "", "setup", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "campaigns (6 rows)")
	assert.Contains(t, out, "ad_performance_daily (20 rows)")
	assert.FileExists(t, filepath.Join(dir, "google_ads.db"))

	out, err = execute(t, "", "query", "--data-dir", dir, "SELECT", "COUNT(*)", "AS", "n", "FROM", "ad_groups")
	require.NoError(t, err)
	assert.Contains(t, out, "8")
	assert.Contains(t, out, "1 row(s) returned")

	_, err = execute(t, "", "query", "--data-dir", dir, "SELECT * FROM nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such table")
}

func TestLessonsAndProgress(t *testing.T) {
	dir := dataDir(t)
	repo := store.NewFileProgressRepo(filepath.Join(dir, "progress.json"))
	p := store.NewProgress("1.3", time.Now())
	p.MarkCompleted("1.1")
	p.MarkCompleted("1.2")
	require.NoError(t, repo.Save(context.Background(), p))

	out, err := execute(t, "", "lessons", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Phase 1:")
	assert.Contains(t, out, "✓ 1.1")
	assert.Contains(t, out, "1.3")
	assert.Contains(t, out, "← current")
	assert.Contains(t, out, "13 lessons")

	out, err = execute(t, "", "progress", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Completed lessons: 1.1, 1.2")
	assert.Contains(t, out, "Current lesson: 1.3")
}

func TestProgressWithoutSavedFile(t *testing.T) {
	dir := dataDir(t)
	out, err := execute(t, "", "progress", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "None yet")
	assert.Contains(t, out, "Current lesson: 1.1")
}

func TestReset(t *testing.T) {
	dir := dataDir(t)
	path := filepath.Join(dir, "progress.json")
	require.NoError(t, store.NewFileProgressRepo(path).Save(context.Background(), store.NewProgress("2.1", time.Now())))

	out, err := execute(t, "n\n", "reset", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")
	assert.FileExists(t, path)

	out, err = execute(t, "y\n", "reset", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Progress reset.")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestHistory(t *testing.T) {
	dir := dataDir(t)

	out, err := execute(t, "", "history", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No activity recorded yet.")

	s, err := store.Open(filepath.Join(dir, "activity.db"))
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendLessonEvent(context.Background(), store.LessonEventData{
		SessionID: "0123456789abcdef", LessonID: "1.1", Action: "run", Detail: "SELECT\n  1", Matched: true,
	}))
	require.NoError(t, s.Close())

	out, err = execute(t, "", "history", "--data-dir", dir, "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "SELECT 1")
	assert.Contains(t, out, "✓")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlcoach")
}
