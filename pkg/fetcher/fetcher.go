package fetcher

import (
	"context"

	"github.com/goran-ethernal/OrderScope/internal/types"
)

// BlockFetcher defines the interface for retrieving whole blocks by height.
// This abstraction allows for easier testing and alternative implementations.
type BlockFetcher interface {
	// GetBlock returns the transactions of the block at height in execution
	// order. An empty block is not an error.
	GetBlock(ctx context.Context, height uint64) (types.Block, error)
}
