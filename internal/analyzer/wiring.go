package analyzer

import (
	"github.com/goran-ethernal/OrderScope/internal/common"
	"github.com/goran-ethernal/OrderScope/internal/detector"
	"github.com/goran-ethernal/OrderScope/internal/extractor"
	"github.com/goran-ethernal/OrderScope/internal/fetcher"
	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/internal/search"
	"github.com/goran-ethernal/OrderScope/pkg/config"
	"github.com/goran-ethernal/OrderScope/pkg/store"
)

// NewFromConfig builds the search client, block fetcher, extractor and
// detector described by cfg and returns an Analyzer over them. All
// liquidators of a run share one block cache.
func NewFromConfig(cfg *config.Config, results store.RecordStore) (*Analyzer, error) {
	var logCfg logger.LoggingConfig
	if cfg.Logging != nil {
		logCfg = cfg.Logging
	}
	componentLog := func(component string) *logger.Logger {
		return logger.NewComponentLoggerFromConfig(component, logCfg)
	}

	client := search.NewClient(cfg.Search, componentLog(common.ComponentSearchClient))
	blocks := fetcher.NewBlockFetcher(client, fetcher.NewBlockCache(), componentLog(common.ComponentBlockFetcher))

	return New(
		cfg.Analysis,
		extractor.NewExtractor(client, cfg.Analysis.GetRelation(), componentLog(common.ComponentExtractor)),
		detector.NewDetector(blocks, cfg.Analysis.OracleFeeder, componentLog(common.ComponentDetector)),
		results,
		componentLog(common.ComponentAnalyzer),
	)
}
