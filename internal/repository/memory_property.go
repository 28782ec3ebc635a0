package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/parcelscout/internal/domain"
)

// MemoryPropertyRepo is an immutable in-memory catalog. It is built once
// and only read afterwards, so concurrent lookups need no locking.
type MemoryPropertyRepo struct {
	byAddress map[string]*domain.PropertyRecord
	order     []string
}

var _ PropertyFinder = (*MemoryPropertyRepo)(nil)

// NewMemoryPropertyRepo copies records into a fixed table keyed by address.
// Duplicate addresses are rejected.
func NewMemoryPropertyRepo(records []*domain.PropertyRecord) (*MemoryPropertyRepo, error) {
	r := &MemoryPropertyRepo{byAddress: make(map[string]*domain.PropertyRecord, len(records))}
	for _, p := range records {
		if _, dup := r.byAddress[p.Address]; dup {
			return nil, fmt.Errorf("duplicate property address %q", p.Address)
		}
		r.byAddress[p.Address] = p.Clone()
		r.order = append(r.order, p.Address)
	}
	return r, nil
}

func (r *MemoryPropertyRepo) FindByAddress(_ context.Context, address string) (*domain.PropertyRecord, error) {
	p, ok := r.byAddress[address]
	if !ok {
		return nil, fmt.Errorf("property %q: %w", address, ErrNotFound)
	}
	return p.Clone(), nil
}

func (r *MemoryPropertyRepo) List(_ context.Context) ([]*domain.PropertyRecord, error) {
	out := make([]*domain.PropertyRecord, 0, len(r.order))
	for _, addr := range r.order {
		out = append(out, r.byAddress[addr].Clone())
	}
	return out, nil
}

// Len returns the number of records in the table.
func (r *MemoryPropertyRepo) Len() int {
	return len(r.order)
}
