package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/parcelscout/internal/db"
)

// listBodies reads the ordered text rows of one permit list table.
func listBodies(ctx context.Context, conn db.DBTX, table, address string) ([]string, error) {
	// table is one of two compile-time constants, never user input.
	rows, err := conn.QueryContext(ctx,
		`SELECT body FROM `+table+` WHERE address = ? ORDER BY position`, address)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}
		out = append(out, body)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", table, err)
	}
	return out, nil
}

// insertBodies writes an ordered permit list, one row per entry.
func insertBodies(ctx context.Context, conn db.DBTX, table, address string, bodies []string) error {
	for i, body := range bodies {
		if _, err := conn.ExecContext(ctx,
			`INSERT INTO `+table+` (address, position, body) VALUES (?, ?, ?)`,
			address, i, body); err != nil {
			return fmt.Errorf("inserting %s %d for %q: %w", table, i, address, err)
		}
	}
	return nil
}
