package db

import (
	"context"
	"database/sql"
)

// DBTX is the query interface satisfied by both *sql.DB and *sql.Tx.
// The store implementations take DBTX rather than *sql.DB so they can run
// inside a transaction when a caller needs one.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time verification that *sql.DB and *sql.Tx satisfy DBTX.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
