package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/parcelscout/internal/db"
	"github.com/alexanderramin/parcelscout/internal/domain"
)

const (
	tableConstraints     = "permit_constraints"
	tableRecommendations = "permit_recommendations"
)

const propertyColumns = `address, city, zoning, land_use, lot_area, lot_frontage, lot_depth,
	year_built, building_class, num_buildings, num_floors, gfa, total_units,
	residential_units, records, overview, compliance, permit_description`

// SQLitePropertyRepo implements PropertyFinder using a SQLite database.
// Create exists only for catalog seeding at startup.
type SQLitePropertyRepo struct {
	db db.DBTX
}

// NewSQLitePropertyRepo creates a new SQLitePropertyRepo.
func NewSQLitePropertyRepo(conn db.DBTX) *SQLitePropertyRepo {
	return &SQLitePropertyRepo{db: conn}
}

var _ PropertyFinder = (*SQLitePropertyRepo)(nil)

// Create inserts a record and its permit lists. orderIndex fixes the
// position of the record in List.
func (r *SQLitePropertyRepo) Create(ctx context.Context, p *domain.PropertyRecord, orderIndex int) error {
	query := `INSERT INTO properties (` + propertyColumns + `, order_index)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.Address,
		p.City,
		p.Zoning,
		p.LandUse,
		p.LotArea,
		p.LotFrontage,
		p.LotDepth,
		p.YearBuilt,
		p.BuildingClass,
		p.NumBuildings,
		p.NumFloors,
		p.GFA,
		p.TotalUnits,
		p.ResidentialUnits,
		p.Records,
		p.ZoningDetails.Overview,
		p.ZoningDetails.Compliance,
		p.ZoningDetails.Permits.Description,
		orderIndex,
	)
	if err != nil {
		return fmt.Errorf("inserting property %q: %w", p.Address, err)
	}
	if err := insertBodies(ctx, r.db, tableConstraints, p.Address, p.ZoningDetails.Permits.Constraints); err != nil {
		return err
	}
	return insertBodies(ctx, r.db, tableRecommendations, p.Address, p.ZoningDetails.Permits.Recommendations)
}

func (r *SQLitePropertyRepo) FindByAddress(ctx context.Context, address string) (*domain.PropertyRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE address = ?`, address)
	p, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("property %q: %w", address, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning property: %w", err)
	}
	if err := r.loadPermits(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLitePropertyRepo) List(ctx context.Context) ([]*domain.PropertyRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+propertyColumns+` FROM properties ORDER BY order_index, address`)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	var out []*domain.PropertyRecord
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating properties: %w", err)
	}
	// Close before loading permits: an in-memory catalog has one connection.
	rows.Close()

	for _, p := range out {
		if err := r.loadPermits(ctx, p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *SQLitePropertyRepo) loadPermits(ctx context.Context, p *domain.PropertyRecord) error {
	constraints, err := listBodies(ctx, r.db, tableConstraints, p.Address)
	if err != nil {
		return err
	}
	recs, err := listBodies(ctx, r.db, tableRecommendations, p.Address)
	if err != nil {
		return err
	}
	p.ZoningDetails.Permits.Constraints = constraints
	p.ZoningDetails.Permits.Recommendations = recs
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProperty(s scanner) (*domain.PropertyRecord, error) {
	var p domain.PropertyRecord
	err := s.Scan(
		&p.Address,
		&p.City,
		&p.Zoning,
		&p.LandUse,
		&p.LotArea,
		&p.LotFrontage,
		&p.LotDepth,
		&p.YearBuilt,
		&p.BuildingClass,
		&p.NumBuildings,
		&p.NumFloors,
		&p.GFA,
		&p.TotalUnits,
		&p.ResidentialUnits,
		&p.Records,
		&p.ZoningDetails.Overview,
		&p.ZoningDetails.Compliance,
		&p.ZoningDetails.Permits.Description,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
