// Package catalog loads the fixed parcel table that every lookup reads.
// The table is read once at startup and never written back.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/alexanderramin/parcelscout/internal/db"
	"github.com/alexanderramin/parcelscout/internal/domain"
	"github.com/alexanderramin/parcelscout/internal/repository"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Backend selects where the loaded catalog is served from.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendSQLite Backend = "sqlite"
)

// Default returns the records of the built-in catalog.
func Default() ([]*domain.PropertyRecord, error) {
	schema, err := ParseCatalog(defaultCatalog)
	if err != nil {
		return nil, err
	}
	return validateAndConvert(schema)
}

// Load reads records from path, or the built-in catalog when path is empty.
func Load(path string) ([]*domain.PropertyRecord, error) {
	if path == "" {
		return Default()
	}
	schema, err := LoadCatalogSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return validateAndConvert(schema)
}

func validateAndConvert(schema *CatalogSchema) ([]*domain.PropertyRecord, error) {
	if errs := ValidateCatalogSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return Convert(schema), nil
}

// Seed replaces the catalog tables with records inside one transaction.
// On failure the previous contents stay in place.
func Seed(ctx context.Context, uow db.UnitOfWork, records []*domain.PropertyRecord) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := db.ClearCatalog(ctx, tx); err != nil {
			return fmt.Errorf("seeding catalog: %w", err)
		}
		repo := repository.NewSQLitePropertyRepo(tx)
		for i, p := range records {
			if err := repo.Create(ctx, p, i); err != nil {
				return fmt.Errorf("seeding catalog: %w", err)
			}
		}
		return nil
	})
}
