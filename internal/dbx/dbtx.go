// Package dbx holds the database handle abstraction shared by the local
// repositories.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is what a repository needs to run statements. Both *sql.DB and
// *sql.Tx satisfy it, so a repository can be bound to either.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
