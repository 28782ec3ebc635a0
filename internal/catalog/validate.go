package catalog

import (
	"fmt"
	"strings"
)

// CurrentVersion is the catalog document version this build reads.
const CurrentVersion = 1

// ValidateCatalogSchema checks the catalog for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateCatalogSchema(schema *CatalogSchema) []error {
	var errs []error

	if schema.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("version: unsupported value %d (expected %d)", schema.Version, CurrentVersion))
	}
	if len(schema.Properties) == 0 {
		errs = append(errs, fmt.Errorf("properties: at least one property is required"))
	}

	seen := make(map[string]int, len(schema.Properties))
	for i := range schema.Properties {
		p := &schema.Properties[i]
		errs = append(errs, validateProperty(i, p)...)
		if isBlank(p.Address) {
			continue
		}
		if first, dup := seen[p.Address]; dup {
			errs = append(errs, fmt.Errorf("properties[%d].address: duplicate of properties[%d] (%q)", i, first, p.Address))
			continue
		}
		seen[p.Address] = i
	}

	return errs
}

func validateProperty(i int, p *PropertySchema) []error {
	var errs []error
	prefix := fmt.Sprintf("properties[%d]", i)

	// Blank queries never reach the repository, so a blank key is unreachable.
	if isBlank(p.Address) {
		errs = append(errs, fmt.Errorf("%s.address is required", prefix))
	}

	counts := []struct {
		name string
		val  int
	}{
		{"year_built", p.YearBuilt},
		{"num_buildings", p.NumBuildings},
		{"num_floors", p.NumFloors},
		{"total_units", p.TotalUnits},
		{"residential_units", p.ResidentialUnits},
	}
	for _, c := range counts {
		if c.val < 0 {
			errs = append(errs, fmt.Errorf("%s.%s must be >= 0, got %d", prefix, c.name, c.val))
		}
	}
	if p.ResidentialUnits > p.TotalUnits {
		errs = append(errs, fmt.Errorf("%s.residential_units (%d) exceeds total_units (%d)", prefix, p.ResidentialUnits, p.TotalUnits))
	}

	for j, c := range p.ZoningDetails.Permits.Constraints {
		if c == "" {
			errs = append(errs, fmt.Errorf("%s.zoning_details.permits.constraints[%d] is empty", prefix, j))
		}
	}
	for j, r := range p.ZoningDetails.Permits.Recommendations {
		if r == "" {
			errs = append(errs, fmt.Errorf("%s.zoning_details.permits.recommendations[%d] is empty", prefix, j))
		}
	}

	return errs
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
