package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/parcelscout/internal/catalog"
	"github.com/alexanderramin/parcelscout/internal/cli/formatter"
	"github.com/alexanderramin/parcelscout/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatYAML     = "yaml"
)

func newLookupCmd(app *App) *cobra.Command {
	var tabFlag, format string

	cmd := &cobra.Command{
		Use:   "lookup [address]",
		Short: "Look up one parcel by its exact address",
		Long: `Look up one parcel by its exact address and print the chat reply,
summary, permit tasks and fact sheet. The address must match a catalog
entry character for character. When omitted on a terminal, it is
prompted for.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tabs, err := parseTabsFlag(tabFlag)
			if err != nil {
				return err
			}
			switch format {
			case formatText, formatMarkdown, formatYAML:
			default:
				return fmt.Errorf("unknown format %q (expected text, markdown or yaml)", format)
			}

			var address string
			switch {
			case len(args) == 1:
				address = args[0]
			case app.interactive():
				if err := addressForm(&address).Run(); err != nil {
					return err
				}
			}
			if err := validateAddress(address); err != nil {
				return err
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Searching...")
			}
			result, err := app.Lookup.Search(cmd.Context(), address)
			stop()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			width, isTerm := terminalWidth(out)

			switch format {
			case formatMarkdown:
				rendered, err := formatter.RenderMarkdown(formatter.MarkdownReport(address, result, tabs), width, isTerm)
				if err != nil {
					return err
				}
				fmt.Fprint(out, rendered)
			case formatYAML:
				return writeLookupYAML(out, address, result)
			default:
				fmt.Fprint(out, renderLookupText(address, result, tabs, width))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tabFlag, "tab", "all", "tab to print: chat, summary, tasks or all")
	cmd.Flags().StringVarP(&format, "format", "o", formatText, "output format: text, markdown or yaml")

	return cmd
}

func parseTabsFlag(s string) ([]domain.Tab, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return domain.Tabs, nil
	}
	tab, err := domain.ParseTab(s)
	if err != nil {
		return nil, err
	}
	return []domain.Tab{tab}, nil
}

// renderLookupText prints the selected tabs followed by the fact sheet. A
// miss prints only the not-found alert whatever tabs were asked for.
func renderLookupText(query string, r *domain.LookupResult, tabs []domain.Tab, width int) string {
	if !r.Found() {
		return formatter.FormatChatReply(query, r, width) + "\n"
	}

	var sections []string
	for _, tab := range tabs {
		sections = append(sections, formatter.Header(tab.Label())+"\n"+formatter.FormatTabContent(tab, query, r, width))
	}
	sections = append(sections, formatter.FormatFactSheet(r, width))
	return strings.Join(sections, "\n\n") + "\n"
}

// lookupOutput is the YAML document printed by lookup --format yaml.
type lookupOutput struct {
	Query    string                  `yaml:"query"`
	Outcome  domain.LookupOutcome    `yaml:"outcome"`
	Message  string                  `yaml:"message,omitempty"`
	Property *catalog.PropertySchema `yaml:"property,omitempty"`
}

func writeLookupYAML(w io.Writer, query string, r *domain.LookupResult) error {
	doc := lookupOutput{Query: query, Outcome: r.Outcome()}
	if r.Found() {
		p := catalog.FromRecord(r.Property)
		doc.Property = &p
	} else if r.IsError() {
		doc.Message = r.Err.Message
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// terminalWidth reports the column count when w is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, true
	}
	return width, true
}
