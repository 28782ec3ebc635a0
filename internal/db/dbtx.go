package db

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is the common interface satisfied by both *sql.DB and *sql.Tx.
// Repositories take a DBTX so the same inserts run inside a seed transaction
// or directly against the pool.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// catalogTables lists every catalog table, children first.
var catalogTables = []string{"permit_recommendations", "permit_constraints", "properties"}

// ClearCatalog deletes every catalog row through conn. Child tables are
// cleared explicitly since foreign_keys is a per-connection pragma and
// pooled file connections may not cascade.
func ClearCatalog(ctx context.Context, conn DBTX) error {
	for _, table := range catalogTables {
		if _, err := conn.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}
