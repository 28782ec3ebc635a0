package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/parcelscout/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FactRow is one label/value line of the fact sheet.
type FactRow struct {
	Label string
	Value string
}

// FactSheetRows lists a record's static attributes in the fixed display
// order. Values are the stored fields verbatim; integers print in base 10.
func FactSheetRows(p *domain.PropertyRecord) []FactRow {
	if p == nil {
		return nil
	}
	return []FactRow{
		{"Address", p.Address},
		{"City", p.City},
		{"Zoning", p.Zoning},
		{"Land Use", p.LandUse},
		{"Lot Area", p.LotArea},
		{"Lot Frontage", p.LotFrontage},
		{"Lot Depth", p.LotDepth},
		{"Year Built", strconv.Itoa(p.YearBuilt)},
		{"Bldg Class", p.BuildingClass},
		{"# of Bldgs", strconv.Itoa(p.NumBuildings)},
		{"# of Floors", strconv.Itoa(p.NumFloors)},
		{"GFA", p.GFA},
		{"Total Units", strconv.Itoa(p.TotalUnits)},
		{"Res. Units", strconv.Itoa(p.ResidentialUnits)},
		{"Records", p.Records},
	}
}

// FormatFactSheet renders the "Properties" card for a found record and
// nothing for an absent or error result.
func FormatFactSheet(r *domain.LookupResult, width int) string {
	if !r.Found() {
		return ""
	}

	rows := FactSheetRows(r.Property)
	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(row.Label))
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(row.Label)+3)
		lines = append(lines, Dim(row.Label)+pad+row.Value)
	}

	edit := Button("Edit", ButtonOutline, SizeSmall, false)
	return Card("Properties", strings.Join(lines, "\n"), width, edit)
}

// OutcomeBadge renders a one-line marker for the last search: green when a
// record matched, red otherwise. Returns "" before any search.
func OutcomeBadge(r *domain.LookupResult) string {
	switch r.Outcome() {
	case domain.OutcomeFound:
		return StyleGreen.Render("● match")
	case domain.OutcomeNotFound:
		return StyleRed.Render("● no match")
	default:
		return ""
	}
}
