package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogSchema is the top-level YAML structure of a parcel catalog file.
type CatalogSchema struct {
	Version    int              `yaml:"version"`
	Properties []PropertySchema `yaml:"properties"`
}

// PropertySchema is one parcel entry. Address is the exact lookup key.
type PropertySchema struct {
	Address          string       `yaml:"address"`
	City             string       `yaml:"city"`
	Zoning           string       `yaml:"zoning"`
	LandUse          string       `yaml:"land_use"`
	LotArea          string       `yaml:"lot_area"`
	LotFrontage      string       `yaml:"lot_frontage"`
	LotDepth         string       `yaml:"lot_depth"`
	YearBuilt        int          `yaml:"year_built"`
	BuildingClass    string       `yaml:"building_class"`
	NumBuildings     int          `yaml:"num_buildings"`
	NumFloors        int          `yaml:"num_floors"`
	GFA              string       `yaml:"gfa"`
	TotalUnits       int          `yaml:"total_units"`
	ResidentialUnits int          `yaml:"residential_units"`
	Records          string       `yaml:"records"`
	ZoningDetails    ZoningSchema `yaml:"zoning_details"`
}

type ZoningSchema struct {
	Overview   string       `yaml:"overview"`
	Compliance string       `yaml:"compliance"`
	Permits    PermitSchema `yaml:"permits"`
}

type PermitSchema struct {
	Description     string   `yaml:"description"`
	Constraints     []string `yaml:"constraints"`
	Recommendations []string `yaml:"recommendations"`
}

// ParseCatalog decodes a catalog document. Unknown keys are rejected so
// typos in field names surface at startup instead of as blank fact rows.
func ParseCatalog(data []byte) (*CatalogSchema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var schema CatalogSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return &schema, nil
}

// LoadCatalogSchema reads and parses a catalog YAML file.
func LoadCatalogSchema(path string) (*CatalogSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}
