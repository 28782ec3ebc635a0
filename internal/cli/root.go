package cli

import (
	"errors"

	"github.com/alexanderramin/parcelscout/internal/config"
	"github.com/alexanderramin/parcelscout/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the services CLI commands use. Lookup is wired from the
// loaded configuration before the first command runs unless it is
// already set.
type App struct {
	Lookup service.LookupService
	Logger *zap.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	closers []func() error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// Close releases everything opened while configuring the app.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// NewRootCmd creates the top-level "parcelscout" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// lookup panel on interactive terminals and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "parcelscout",
		Short:        "Zoning and permit lookup for known parcels",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.configure(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runTUI(app)
		},
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newLookupCmd(app),
		newListCmd(app),
	)

	return root
}
