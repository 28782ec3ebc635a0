package formatter

import (
	"strings"

	"github.com/alexanderramin/parcelscout/internal/domain"
)

// Checklist is the display structure of a permit plan.
type Checklist struct {
	Heading     string
	Description string
	Step        string
	Sections    []ChecklistSection
}

type ChecklistSection struct {
	Title string
	Items []string
}

// PermitChecklist arranges a plan into its fixed two sections. Items keep
// their stored order; nothing is filtered or deduplicated.
func PermitChecklist(plan domain.PermitPlan) Checklist {
	return Checklist{
		Heading:     "Permits and Approvals",
		Description: plan.Description,
		Step:        "Submit Zoning Compliance Review",
		Sections: []ChecklistSection{
			{Title: "Constraints", Items: append([]string(nil), plan.Constraints...)},
			{Title: "Recommendations", Items: append([]string(nil), plan.Recommendations...)},
		},
	}
}

// FormatPermitPlan renders the checklist as indented text.
func FormatPermitPlan(plan domain.PermitPlan, width int) string {
	cl := PermitChecklist(plan)

	var b strings.Builder
	b.WriteString(Header(cl.Heading))
	b.WriteString("\n")
	b.WriteString(StyleFg.Render(wrapText(cl.Description, width)))
	b.WriteString("\n\n")
	b.WriteString("  " + Bold("○ "+cl.Step))
	b.WriteString("\n")

	for i, sec := range cl.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("    " + Bold("○ "+sec.Title))
		b.WriteString("\n")
		for _, item := range sec.Items {
			b.WriteString(hangingIndent("      • ", item, width))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
