package main

import (
	"errors"
	"fmt"

	"github.com/goran-ethernal/OrderScope/internal/common"
	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/internal/store"
	"github.com/goran-ethernal/OrderScope/pkg/api"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve stored results over the REST API",
	Long:  `Serve the results persisted by earlier analyze runs, together with the metrics endpoint when enabled.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Store == nil || cfg.API == nil || !cfg.API.Enabled {
		return errors.New("serve needs both a store and an enabled api section in the configuration")
	}

	ctx, cancel := signalContext()
	defer cancel()

	results, err := store.Open(*cfg.Store,
		logger.NewComponentLoggerFromConfig(common.ComponentReportStore, loggingConfig(cfg)))
	if err != nil {
		return fmt.Errorf("failed to open result store: %w", err)
	}
	defer results.Close()

	stopMetrics, err := startMetrics(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer stopMetrics()

	server := api.NewServer(cfg.API, results,
		logger.NewComponentLoggerFromConfig(common.ComponentAPI, loggingConfig(cfg)))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("api server failed: %w", err)
	}

	log.Info("OrderScope stopped successfully")
	return nil
}
