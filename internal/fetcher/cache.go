package fetcher

import (
	"strconv"

	"github.com/goran-ethernal/OrderScope/internal/types"
	"github.com/patrickmn/go-cache"
)

// BlockCache memoizes fetched blocks by height. Finalized blocks never change,
// so entries never expire and are never evicted.
type BlockCache struct {
	c *cache.Cache
}

// NewBlockCache creates an empty block cache.
func NewBlockCache() *BlockCache {
	return &BlockCache{c: cache.New(cache.NoExpiration, 0)}
}

// Get returns the cached block at height, if any.
func (bc *BlockCache) Get(height uint64) (types.Block, bool) {
	v, ok := bc.c.Get(key(height))
	if !ok {
		return nil, false
	}
	return v.(types.Block), true
}

// Set stores block under height. Empty blocks are cached too.
func (bc *BlockCache) Set(height uint64, block types.Block) {
	bc.c.Set(key(height), block, cache.NoExpiration)
}

// Len returns the number of cached blocks.
func (bc *BlockCache) Len() int {
	return bc.c.ItemCount()
}

func key(height uint64) string {
	return strconv.FormatUint(height, 10)
}
