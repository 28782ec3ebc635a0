package service

import (
	"context"
	"time"

	"github.com/alexanderramin/parcelscout/internal/domain"
)

// LookupService resolves address queries against the parcel catalog.
type LookupService interface {
	// Resolve looks the address up immediately. It never fails: a miss or a
	// catalog error both yield the not-found payload.
	Resolve(ctx context.Context, address string) *domain.LookupResult
	// Search waits out the simulated network delay, then resolves. It
	// returns ctx.Err() if the context ends first.
	Search(ctx context.Context, address string) (*domain.LookupResult, error)
	// Delay is the simulated network delay Search applies.
	Delay() time.Duration
	List(ctx context.Context) ([]*domain.PropertyRecord, error)
}
