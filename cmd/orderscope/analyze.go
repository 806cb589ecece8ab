package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goran-ethernal/OrderScope/internal/analyzer"
	"github.com/goran-ethernal/OrderScope/internal/common"
	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/internal/report"
	"github.com/goran-ethernal/OrderScope/internal/store"
	pkgstore "github.com/goran-ethernal/OrderScope/pkg/store"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var outputFormat string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the configured analysis and print the results",
	Long: `Extract the liquidations of every configured liquidator, check each one
against the oracle feeder's price updates, print the flagged transaction
hashes and the statistics, and persist the results when a store is
configured. Nothing is printed or persisted if any liquidator fails.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&outputFormat, "output", "o", formatText, "output format: text or json")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if outputFormat != formatText && outputFormat != formatJSON {
		return fmt.Errorf("unknown output format %q", outputFormat)
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	stopMetrics, err := startMetrics(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer stopMetrics()

	var results pkgstore.RecordStore
	if cfg.Store != nil {
		s, err := store.Open(*cfg.Store,
			logger.NewComponentLoggerFromConfig(common.ComponentReportStore, loggingConfig(cfg)))
		if err != nil {
			return fmt.Errorf("failed to open result store: %w", err)
		}
		defer s.Close()
		results = s
	}

	a, err := analyzer.NewFromConfig(cfg, results)
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	out, err := a.Run(ctx)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return printResults(os.Stdout, out)
}

func printResults(w io.Writer, results []*report.Result) error {
	if outputFormat == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		if err := report.WriteFlagged(w, r); err != nil {
			return err
		}
	}
	for _, r := range results {
		if err := report.WriteSummary(w, r); err != nil {
			return err
		}
	}
	return nil
}
