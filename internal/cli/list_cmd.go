package cli

import (
	"fmt"

	"github.com/alexanderramin/parcelscout/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the addresses in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := app.Lookup.List(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(records))
			for _, p := range records {
				rows = append(rows, []string{p.Address, p.City, p.Zoning})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ADDRESS", "CITY", "ZONING"},
				rows,
			))
			return nil
		},
	}
}
