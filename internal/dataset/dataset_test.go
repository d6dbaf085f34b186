package dataset

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sqlcoach/internal/curriculum"
)

func setupTestDataset(t *testing.T) *Executor {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ads.db")
	require.NoError(t, Setup(context.Background(), path))
	return NewExecutor(path)
}

func TestSetup_SeedCounts(t *testing.T) {
	ex := setupTestDataset(t)

	counts, err := ex.TableCounts(context.Background())
	require.NoError(t, err)

	want := []TableCount{
		{Table: "campaigns", Rows: 6},
		{Table: "ad_groups", Rows: 8},
		{Table: "ad_performance_daily", Rows: 20},
		{Table: "search_terms", Rows: 12},
		{Table: "conversions", Rows: 12},
	}
	assert.Equal(t, want, counts)

	seeded := SeedCounts()
	for _, c := range counts {
		assert.EqualValues(t, seeded[c.Table], c.Rows, "table %s", c.Table)
	}
}

func TestSetup_Recreates(t *testing.T) {
	ex := setupTestDataset(t)
	ctx := context.Background()

	_, err := ex.Query(ctx, "DELETE FROM conversions")
	require.NoError(t, err)

	require.NoError(t, Setup(ctx, ex.Path()))

	res, err := ex.Query(ctx, "SELECT COUNT(*) FROM conversions")
	require.NoError(t, err)
	assert.EqualValues(t, 12, res.Rows[0][0])
}

func TestEnsure(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "ads.db")

	created, err := Ensure(ctx, path)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = Ensure(ctx, path)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestQuery_ColumnsAndRows(t *testing.T) {
	ex := setupTestDataset(t)

	res, err := ex.Query(context.Background(), "SELECT campaign_name, bidding_strategy FROM campaigns;")
	require.NoError(t, err)
	assert.Equal(t, []string{"campaign_name", "bidding_strategy"}, res.Columns)
	require.Len(t, res.Rows, 6)
	assert.Equal(t, "Brand_Search_US", FormatValue(res.Rows[0][0]))
	assert.Equal(t, "TARGET_CPA", FormatValue(res.Rows[0][1]))
}

func TestQuery_Error(t *testing.T) {
	ex := setupTestDataset(t)

	_, err := ex.Query(context.Background(), "SELECT nope FROM campaigns")
	require.Error(t, err)

	var qe *QueryError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, "SELECT nope FROM campaigns", qe.SQL)
}

func TestQuery_MissingDataset(t *testing.T) {
	ex := NewExecutor(filepath.Join(t.TempDir(), "missing.db"))

	_, err := ex.Query(context.Background(), "SELECT 1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuery_NoResultSet(t *testing.T) {
	ex := setupTestDataset(t)

	res, err := ex.Query(context.Background(), "UPDATE campaigns SET status = 'PAUSED' WHERE campaign_id = 1")
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
}

func TestQuery_EveryLessonAnswerRuns(t *testing.T) {
	ex := setupTestDataset(t)
	ctx := context.Background()

	for _, l := range curriculum.Default().Lessons() {
		res, err := ex.Query(ctx, l.Answer)
		if assert.NoError(t, err, "lesson %s", l.ID) {
			assert.NotEmpty(t, res.Rows, "lesson %s returned no rows", l.ID)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "NULL"},
		{int64(42), "42"},
		{float64(42), "42.0"},
		{float64(85.5), "85.5"},
		{"PURCHASE", "PURCHASE"},
		{[]byte("raw"), "raw"},
		{time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "2025-01-15"},
		{time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC), "2025-01-15 09:30:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.in))
	}
}

func TestSchema_MatchesTableNames(t *testing.T) {
	names := TableNames()
	require.Len(t, names, 5)
	assert.Equal(t, "campaigns", names[0])
	for _, tbl := range Schema() {
		assert.NotEmpty(t, tbl.Columns, "table %s", tbl.Name)
	}
}
