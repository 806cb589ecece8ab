package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goran-ethernal/OrderScope/internal/common"
	"github.com/goran-ethernal/OrderScope/internal/config"
	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/internal/metrics"
	pkgconfig "github.com/goran-ethernal/OrderScope/pkg/config"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "orderscope",
	Short: "OrderScope - liquidation ordering analysis for Terra",
	Long: `OrderScope checks whether a liquidator's liquidate_collateral transactions
executed immediately before (frontrun) or after (backrun) an oracle price
update, reports how often that happened, and serves the results over a
read-only REST API.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to configuration file")
	rootCmd.AddCommand(analyzeCmd, serveCmd, schemaCmd)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "\nShutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

func loggingConfig(cfg *pkgconfig.Config) logger.LoggingConfig {
	if cfg.Logging == nil {
		return nil
	}
	return cfg.Logging
}

// startMetrics starts the metrics server when enabled. The returned stop
// function is always safe to call.
func startMetrics(ctx context.Context, cfg *pkgconfig.Config, log *logger.Logger) (func(), error) {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return func() {}, nil
	}

	server := metrics.NewServer(cfg.Metrics, log)
	if err := server.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start metrics server: %w", err)
	}
	log.Infof("Metrics server started on %s%s", server.Addr(), cfg.Metrics.Path)

	return func() {
		if err := server.Stop(context.Background()); err != nil {
			log.Warnf("Failed to stop metrics server: %v", err)
		}
	}, nil
}

func loadConfig() (*pkgconfig.Config, *logger.Logger, error) {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, logger.NewComponentLoggerFromConfig(common.ComponentAnalyzer, loggingConfig(cfg)), nil
}
