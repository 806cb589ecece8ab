package fetcher

import (
	"context"

	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/internal/types"
	"github.com/goran-ethernal/OrderScope/pkg/fetcher"
	"github.com/goran-ethernal/OrderScope/pkg/search"
)

// Compile-time check to ensure BlockFetcher implements fetcher.BlockFetcher interface.
var _ fetcher.BlockFetcher = (*BlockFetcher)(nil)

// BlockFetcher retrieves blocks from the search service and memoizes them.
// It is not safe for concurrent use.
type BlockFetcher struct {
	search search.Client
	cache  *BlockCache
	log    *logger.Logger
}

// NewBlockFetcher creates a new BlockFetcher backed by cache.
func NewBlockFetcher(client search.Client, cache *BlockCache, log *logger.Logger) *BlockFetcher {
	return &BlockFetcher{
		search: client,
		cache:  cache,
		log:    log,
	}
}

// GetBlock returns the transactions of the block at height in execution order.
//
// The search service pages blocks by PageSize transactions. When the first
// page is full a single second page is requested; blocks with more than two
// pages of transactions are truncated.
func (bf *BlockFetcher) GetBlock(ctx context.Context, height uint64) (types.Block, error) {
	if block, ok := bf.cache.Get(height); ok {
		blockCacheHits.Inc()
		return block, nil
	}
	blockCacheMisses.Inc()

	first, err := bf.search.TxsByHeight(ctx, height, 0)
	if err != nil {
		return nil, err
	}
	blockPagesFetched.Inc()

	block := types.Block(first)

	if len(first) == search.PageSize {
		second, err := bf.search.TxsByHeight(ctx, height, search.PageSize)
		if err != nil {
			return nil, err
		}
		blockPagesFetched.Inc()

		block = append(block, second...)

		if len(second) == search.PageSize {
			blocksTruncated.Inc()
			bf.log.Debugf("block %d has at least %d transactions, the rest is not fetched", height, len(block))
		}
	}

	bf.cache.Set(height, block)
	bf.log.Debugw("block fetched", "height", height, "transactions", len(block))

	return block, nil
}
