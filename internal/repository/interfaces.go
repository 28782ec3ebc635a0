package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/parcelscout/internal/domain"
)

// ErrNotFound is wrapped by every finder when no record has the exact address.
var ErrNotFound = errors.New("not found")

// PropertyFinder is the read-only view of the parcel catalog.
// FindByAddress matches the address byte-for-byte: no trimming, no case folding.
type PropertyFinder interface {
	FindByAddress(ctx context.Context, address string) (*domain.PropertyRecord, error)
	List(ctx context.Context) ([]*domain.PropertyRecord, error)
}
