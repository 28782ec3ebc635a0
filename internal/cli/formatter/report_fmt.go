package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/parcelscout/internal/domain"
	"github.com/charmbracelet/glamour"
)

// MarkdownReport renders a lookup as a Markdown document with one section
// per requested tab followed by the fact sheet table.
func MarkdownReport(query string, r *domain.LookupResult, tabs []domain.Tab) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(query))

	if !r.Found() {
		msg := domain.NotFoundMessage
		if r.IsError() {
			msg = r.Err.Message
		}
		fmt.Fprintf(&b, "> **%s**\n", msg)
		return b.String()
	}

	details := r.Property.ZoningDetails
	for _, tab := range tabs {
		switch tab {
		case domain.TabChat:
			b.WriteString("## Chat\n\n")
			fmt.Fprintf(&b, "%s\n\n", escapeMarkdown(ChatReplyText(query)))
			for _, p := range FollowUpPrompts {
				fmt.Fprintf(&b, "- _%s_\n", p)
			}
			b.WriteString("\n")
		case domain.TabSummary:
			b.WriteString("## Property Overview\n\n")
			fmt.Fprintf(&b, "%s\n\n", details.Overview)
			b.WriteString("## Zoning Compliance\n\n")
			fmt.Fprintf(&b, "%s\n\n", details.Compliance)
		case domain.TabTasks:
			cl := PermitChecklist(details.Permits)
			fmt.Fprintf(&b, "## %s\n\n%s\n\n", cl.Heading, cl.Description)
			fmt.Fprintf(&b, "### %s\n\n", cl.Step)
			for _, sec := range cl.Sections {
				fmt.Fprintf(&b, "#### %s\n\n", sec.Title)
				for _, item := range sec.Items {
					fmt.Fprintf(&b, "- %s\n", item)
				}
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("## Properties\n\n| Field | Value |\n| --- | --- |\n")
	for _, row := range FactSheetRows(r.Property) {
		fmt.Fprintf(&b, "| %s | %s |\n", row.Label, strings.ReplaceAll(row.Value, "|", `\|`))
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`, "[", `\[`, "]", `\]`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// RenderMarkdown renders Markdown for the terminal. styled selects the
// automatic color style; otherwise the plain "notty" style is used so
// piped output stays free of escape codes.
func RenderMarkdown(md string, width int, styled bool) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle("notty")}
	if styled {
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
