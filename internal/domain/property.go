package domain

// PropertyRecord is the full description of one parcel: its static lot and
// building attributes plus the pre-written zoning narrative.
// Address is the lookup key.
type PropertyRecord struct {
	Address          string
	City             string
	Zoning           string
	LandUse          string
	LotArea          string
	LotFrontage      string
	LotDepth         string
	YearBuilt        int
	BuildingClass    string
	NumBuildings     int
	NumFloors        int
	GFA              string
	TotalUnits       int
	ResidentialUnits int
	Records          string
	ZoningDetails    ZoningNarrative
}

type ZoningNarrative struct {
	Overview   string
	Compliance string
	Permits    PermitPlan
}

// PermitPlan lists the redevelopment constraints and recommendations for a
// parcel. Both slices are rendered in stored order.
type PermitPlan struct {
	Description     string
	Constraints     []string
	Recommendations []string
}

// Clone returns a deep copy so callers can never mutate catalog data.
func (p *PropertyRecord) Clone() *PropertyRecord {
	if p == nil {
		return nil
	}
	c := *p
	c.ZoningDetails.Permits.Constraints = append([]string(nil), p.ZoningDetails.Permits.Constraints...)
	c.ZoningDetails.Permits.Recommendations = append([]string(nil), p.ZoningDetails.Permits.Recommendations...)
	return &c
}
