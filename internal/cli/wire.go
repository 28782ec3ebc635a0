package cli

import (
	"fmt"

	"github.com/alexanderramin/parcelscout/internal/catalog"
	"github.com/alexanderramin/parcelscout/internal/config"
	"github.com/alexanderramin/parcelscout/internal/logging"
	"github.com/alexanderramin/parcelscout/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configure loads configuration for cmd and wires the lookup service.
func (a *App) configure(cmd *cobra.Command) error {
	if a.Lookup != nil {
		return nil
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.Logger = logger
	a.closers = append(a.closers, func() error {
		_ = logger.Sync()
		return nil
	})

	store, err := catalog.Open(cmd.Context(), catalog.Options{
		Path:    cfg.Catalog.Path,
		Backend: catalog.Backend(cfg.Catalog.Backend),
		DBPath:  cfg.Catalog.DBPath,
	})
	if err != nil {
		logger.Error("catalog open failed", zap.Error(err))
		return fmt.Errorf("opening catalog: %w", err)
	}
	a.closers = append(a.closers, store.Close)

	logger.Info("catalog opened",
		zap.String("backend", cfg.Catalog.Backend),
		zap.String("path", cfg.Catalog.Path),
		zap.Duration("search_delay", cfg.Search.Delay),
	)

	a.Lookup = service.NewLookupService(store, cfg.Search.Delay, service.NewLogUseCaseObserver(logger))
	return nil
}
