package repository

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sql.DB (or *sql.Tx) the repositories need.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Category mirrors a row of the categories table.
type Category struct {
	ID   int64
	Type string
}

// Question mirrors a row of the questions table.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64
	Difficulty int32
}

// InsertQuestionParams carries nullable columns so that missing fields reach the
// store as NULL and are rejected by its constraints.
type InsertQuestionParams struct {
	Question   sql.NullString
	Answer     sql.NullString
	Category   sql.NullInt64
	Difficulty sql.NullInt32
}
