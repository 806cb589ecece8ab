package fetcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orderscope_block_cache_hits_total",
			Help: "Number of block lookups served from the cache",
		},
	)

	blockCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orderscope_block_cache_misses_total",
			Help: "Number of block lookups that queried the search service",
		},
	)

	blockPagesFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orderscope_block_pages_fetched_total",
			Help: "Number of block pages fetched from the search service",
		},
	)

	blocksTruncated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orderscope_blocks_truncated_total",
			Help: "Number of blocks whose second page was full and may be truncated",
		},
	)
)
