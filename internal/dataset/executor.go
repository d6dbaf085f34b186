package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNotFound is returned when the dataset file does not exist.
var ErrNotFound = errors.New("dataset not found")

// QueryError wraps an error reported by the database engine for a
// learner-supplied statement.
type QueryError struct {
	SQL string
	Err error
}

func (e *QueryError) Error() string {
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a successful statement.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Executor runs statements against the dataset file. It holds no
// connection; every call opens and closes its own.
type Executor struct {
	path string
}

// NewExecutor returns an executor for the dataset file at path.
func NewExecutor(path string) *Executor {
	return &Executor{path: path}
}

// Path returns the dataset file path.
func (e *Executor) Path() string {
	return e.path
}

// connect opens the dataset file, refusing to create it implicitly.
func (e *Executor) connect(ctx context.Context) (*sql.DB, error) {
	if _, err := os.Stat(e.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (run 'sqlcoach setup')", ErrNotFound, e.path)
		}
		return nil, fmt.Errorf("stat dataset: %w", err)
	}
	return open(ctx, e.path)
}

// Query executes a single statement and collects its full result set.
// Statements that produce no rows return a Result with no columns.
// Engine errors are returned as *QueryError.
func (e *Executor) Query(ctx context.Context, query string) (*Result, error) {
	db, err := e.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &QueryError{SQL: query, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &QueryError{SQL: query, Err: err}
	}

	res := &Result{Columns: cols}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &QueryError{SQL: query, Err: err}
		}
		res.Rows = append(res.Rows, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{SQL: query, Err: err}
	}
	return res, nil
}

// TableCount is the live row count of one dataset table.
type TableCount struct {
	Table string
	Rows  int64
}

// TableCounts returns the current row count of every dataset table, in
// creation order.
func (e *Executor) TableCounts(ctx context.Context) ([]TableCount, error) {
	db, err := e.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	names := TableNames()
	out := make([]TableCount, 0, len(names))
	for _, name := range names {
		var n int64
		if err := db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", name)).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		out = append(out, TableCount{Table: name, Rows: n})
	}
	return out, nil
}
