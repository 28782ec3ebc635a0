package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/parcelscout/internal/domain"
)

// Address of the parcel in the default catalog.
const KnownAddress = "5721 18th Avenue"

var testAddressCounter atomic.Int64

type PropertyOption func(*domain.PropertyRecord)

func WithAddress(addr string) PropertyOption {
	return func(p *domain.PropertyRecord) {
		p.Address = addr
	}
}

func WithZoning(z string) PropertyOption {
	return func(p *domain.PropertyRecord) {
		p.Zoning = z
	}
}

func WithUnits(total, residential int) PropertyOption {
	return func(p *domain.PropertyRecord) {
		p.TotalUnits = total
		p.ResidentialUnits = residential
	}
}

func WithPermits(constraints, recommendations []string) PropertyOption {
	return func(p *domain.PropertyRecord) {
		p.ZoningDetails.Permits.Constraints = constraints
		p.ZoningDetails.Permits.Recommendations = recommendations
	}
}

// NewTestProperty returns a fully populated record with a unique address
// unless WithAddress overrides it.
func NewTestProperty(opts ...PropertyOption) *domain.PropertyRecord {
	n := testAddressCounter.Add(1)
	p := &domain.PropertyRecord{
		Address:          fmt.Sprintf("%d Test Street", 100+n),
		City:             "Testville",
		Zoning:           "R6",
		LandUse:          "Residential",
		LotArea:          "2,000 sq ft",
		LotFrontage:      "20 ft",
		LotDepth:         "100 ft",
		YearBuilt:        1950,
		BuildingClass:    "Walk-up (C1)",
		NumBuildings:     1,
		NumFloors:        3,
		GFA:              "4,500 sq ft",
		TotalUnits:       6,
		ResidentialUnits: 6,
		Records:          "View ACRIS",
		ZoningDetails: domain.ZoningNarrative{
			Overview:   "Test overview.",
			Compliance: "Test compliance.",
			Permits: domain.PermitPlan{
				Description:     "Test permit description.",
				Constraints:     []string{"First constraint.", "Second constraint."},
				Recommendations: []string{"First recommendation.", "Second recommendation."},
			},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
