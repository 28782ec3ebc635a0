package catalog

import "github.com/alexanderramin/parcelscout/internal/domain"

// Convert transforms a validated CatalogSchema into domain records in
// document order. Call ValidateCatalogSchema first.
func Convert(schema *CatalogSchema) []*domain.PropertyRecord {
	out := make([]*domain.PropertyRecord, 0, len(schema.Properties))
	for _, p := range schema.Properties {
		out = append(out, &domain.PropertyRecord{
			Address:          p.Address,
			City:             p.City,
			Zoning:           p.Zoning,
			LandUse:          p.LandUse,
			LotArea:          p.LotArea,
			LotFrontage:      p.LotFrontage,
			LotDepth:         p.LotDepth,
			YearBuilt:        p.YearBuilt,
			BuildingClass:    p.BuildingClass,
			NumBuildings:     p.NumBuildings,
			NumFloors:        p.NumFloors,
			GFA:              p.GFA,
			TotalUnits:       p.TotalUnits,
			ResidentialUnits: p.ResidentialUnits,
			Records:          p.Records,
			ZoningDetails: domain.ZoningNarrative{
				Overview:   p.ZoningDetails.Overview,
				Compliance: p.ZoningDetails.Compliance,
				Permits: domain.PermitPlan{
					Description:     p.ZoningDetails.Permits.Description,
					Constraints:     append([]string(nil), p.ZoningDetails.Permits.Constraints...),
					Recommendations: append([]string(nil), p.ZoningDetails.Permits.Recommendations...),
				},
			},
		})
	}
	return out
}

// FromRecord is the inverse of Convert for a single record, used when
// printing a lookup result as YAML.
func FromRecord(p *domain.PropertyRecord) PropertySchema {
	return PropertySchema{
		Address:          p.Address,
		City:             p.City,
		Zoning:           p.Zoning,
		LandUse:          p.LandUse,
		LotArea:          p.LotArea,
		LotFrontage:      p.LotFrontage,
		LotDepth:         p.LotDepth,
		YearBuilt:        p.YearBuilt,
		BuildingClass:    p.BuildingClass,
		NumBuildings:     p.NumBuildings,
		NumFloors:        p.NumFloors,
		GFA:              p.GFA,
		TotalUnits:       p.TotalUnits,
		ResidentialUnits: p.ResidentialUnits,
		Records:          p.Records,
		ZoningDetails: ZoningSchema{
			Overview:   p.ZoningDetails.Overview,
			Compliance: p.ZoningDetails.Compliance,
			Permits: PermitSchema{
				Description:     p.ZoningDetails.Permits.Description,
				Constraints:     p.ZoningDetails.Permits.Constraints,
				Recommendations: p.ZoningDetails.Permits.Recommendations,
			},
		},
	}
}
