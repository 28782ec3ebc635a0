package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/parcelscout/internal/db"
	"github.com/alexanderramin/parcelscout/internal/domain"
	"github.com/alexanderramin/parcelscout/internal/repository"
)

// Options configures Open.
type Options struct {
	Path    string  // catalog YAML; empty selects the built-in catalog
	Backend Backend // memory (default) or sqlite
	DBPath  string  // sqlite backend only; defaults to an in-memory database
}

// Store is an opened catalog. Close releases the SQLite handle if any.
type Store struct {
	repository.PropertyFinder
	database *sql.DB
}

// Close is safe to call on any Store.
func (s *Store) Close() error {
	if s.database == nil {
		return nil
	}
	return s.database.Close()
}

// Open loads the catalog and serves it from the selected backend.
// A file-backed sqlite catalog is rebuilt on every start so it always
// mirrors the YAML source.
func Open(ctx context.Context, opts Options) (*Store, error) {
	records, err := Load(opts.Path)
	if err != nil {
		return nil, err
	}

	switch opts.Backend {
	case "", BackendMemory:
		repo, err := repository.NewMemoryPropertyRepo(records)
		if err != nil {
			return nil, err
		}
		return &Store{PropertyFinder: repo}, nil
	case BackendSQLite:
		return openSQLite(ctx, opts.DBPath, records)
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", opts.Backend)
	}
}

func openSQLite(ctx context.Context, path string, records []*domain.PropertyRecord) (*Store, error) {
	if path == "" {
		path = db.MemoryPath
	}
	database, err := db.OpenDB(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}
	if err := Seed(ctx, db.NewSQLiteUnitOfWork(database), records); err != nil {
		database.Close()
		return nil, err
	}
	return &Store{
		PropertyFinder: repository.NewSQLitePropertyRepo(database),
		database:       database,
	}, nil
}
