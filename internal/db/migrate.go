package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// The address column uses the default BINARY collation: lookups match
// byte-for-byte, including case and surrounding whitespace.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS properties (
		address            TEXT PRIMARY KEY,
		city               TEXT NOT NULL DEFAULT '',
		zoning             TEXT NOT NULL DEFAULT '',
		land_use           TEXT NOT NULL DEFAULT '',
		lot_area           TEXT NOT NULL DEFAULT '',
		lot_frontage       TEXT NOT NULL DEFAULT '',
		lot_depth          TEXT NOT NULL DEFAULT '',
		year_built         INTEGER NOT NULL DEFAULT 0,
		building_class     TEXT NOT NULL DEFAULT '',
		num_buildings      INTEGER NOT NULL DEFAULT 0 CHECK(num_buildings >= 0),
		num_floors         INTEGER NOT NULL DEFAULT 0 CHECK(num_floors >= 0),
		gfa                TEXT NOT NULL DEFAULT '',
		total_units        INTEGER NOT NULL DEFAULT 0 CHECK(total_units >= 0),
		residential_units  INTEGER NOT NULL DEFAULT 0 CHECK(residential_units >= 0),
		records            TEXT NOT NULL DEFAULT '',
		overview           TEXT NOT NULL DEFAULT '',
		compliance         TEXT NOT NULL DEFAULT '',
		permit_description TEXT NOT NULL DEFAULT '',
		order_index        INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS permit_constraints (
		address     TEXT NOT NULL REFERENCES properties(address) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		body        TEXT NOT NULL,
		PRIMARY KEY (address, position)
	)`,

	`CREATE TABLE IF NOT EXISTS permit_recommendations (
		address     TEXT NOT NULL REFERENCES properties(address) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		body        TEXT NOT NULL,
		PRIMARY KEY (address, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_properties_order ON properties(order_index)`,
}
