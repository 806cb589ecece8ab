package analyzer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goran-ethernal/OrderScope/internal/common"
	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/internal/metrics"
	"github.com/goran-ethernal/OrderScope/internal/report"
	"github.com/goran-ethernal/OrderScope/pkg/config"
	"github.com/goran-ethernal/OrderScope/pkg/liquidation"
	"github.com/goran-ethernal/OrderScope/pkg/store"
)

// Extractor lists the liquidations a sender submitted in a height range.
type Extractor interface {
	ExtractLiquidations(ctx context.Context, sender string, afterHeight, beforeHeight uint64) ([]*liquidation.Record, error)
}

// Detector flags records that stand in their relation to a price update.
type Detector interface {
	DetectAll(ctx context.Context, records []*liquidation.Record) (int, error)
}

// Analyzer runs the configured analysis for every liquidator.
type Analyzer struct {
	cfg       config.AnalysisConfig
	extractor Extractor
	detector  Detector
	results   store.RecordStore
	log       *logger.Logger
}

// New creates an Analyzer. results may be nil, in which case nothing is persisted.
func New(
	cfg config.AnalysisConfig,
	extractor Extractor,
	detector Detector,
	results store.RecordStore,
	log *logger.Logger,
) (*Analyzer, error) {
	if extractor == nil {
		return nil, errors.New("extractor is required")
	}
	if detector == nil {
		return nil, errors.New("detector is required")
	}
	if log == nil {
		return nil, errors.New("logger is required")
	}

	return &Analyzer{
		cfg:       cfg,
		extractor: extractor,
		detector:  detector,
		results:   results,
		log:       log,
	}, nil
}

// Run analyzes the liquidators one after the other. Results are persisted
// only once every liquidator has been analyzed; on error nothing is saved.
func (a *Analyzer) Run(ctx context.Context) ([]*report.Result, error) {
	relation := a.cfg.GetRelation()

	a.log.Infow("starting analysis",
		"relation", relation,
		"liquidators", len(a.cfg.Liquidators),
		"from_height", a.cfg.FromHeight,
		"to_height", a.cfg.ToHeight)

	results := make([]*report.Result, 0, len(a.cfg.Liquidators))
	for _, liquidator := range a.cfg.Liquidators {
		result, err := a.analyze(ctx, liquidator, relation)
		if err != nil {
			metrics.ErrorsInc(common.ComponentAnalyzer, "error")
			metrics.ComponentHealthSet(common.ComponentAnalyzer, false)
			return nil, err
		}
		results = append(results, result)
	}

	if a.results != nil {
		runs := make([]store.Run, len(results))
		for i, r := range results {
			runs[i] = store.Run{
				Liquidator: r.Liquidator,
				Relation:   r.Relation,
				Records:    r.Records,
			}
		}

		if err := a.results.SaveRun(ctx, runs...); err != nil {
			metrics.ErrorsInc(common.ComponentReportStore, "error")
			return nil, fmt.Errorf("failed to persist results: %w", err)
		}
		a.log.Infof("persisted results of %d liquidators", len(runs))
	}

	metrics.ComponentHealthSet(common.ComponentAnalyzer, true)
	return results, nil
}

func (a *Analyzer) analyze(ctx context.Context, liquidator string, relation liquidation.Relation) (*report.Result, error) {
	start := time.Now()

	records, err := a.extractor.ExtractLiquidations(ctx, liquidator, a.cfg.FromHeight, a.cfg.ToHeight)
	if err != nil {
		return nil, err
	}

	flagged, err := a.detector.DetectAll(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze liquidations of %s: %w", liquidator, err)
	}

	buckets, err := report.Bucketize(records, a.cfg.FromHeight, a.cfg.ToHeight, a.cfg.BucketSize)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket liquidations of %s: %w", liquidator, err)
	}

	result := &report.Result{
		Liquidator:  liquidator,
		Relation:    relation,
		FromHeight:  a.cfg.FromHeight,
		ToHeight:    a.cfg.ToHeight,
		SplitHeight: a.cfg.SplitHeight,
		Records:     records,
		Stats:       report.Summarize(records, a.cfg.SplitHeight),
		Buckets:     buckets,
	}

	duration := time.Since(start)
	metrics.RunDurationLog(liquidator, relation.String(), duration)
	metrics.LiquidationsSet(liquidator, relation.String(), len(records), flagged)

	a.log.Infow("liquidator analyzed",
		"liquidator", liquidator,
		"liquidations", len(records),
		"flagged", flagged,
		"duration", duration)

	return result, nil
}
