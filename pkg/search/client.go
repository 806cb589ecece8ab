package search

import (
	"context"

	"github.com/goran-ethernal/OrderScope/internal/types"
)

// PageSize is the number of transactions the search service returns per page.
const PageSize = 100

// SenderQuery selects transactions sent by one account inside an exclusive
// height range.
type SenderQuery struct {
	Sender       string
	AfterHeight  uint64
	BeforeHeight uint64
	Offset       uint64
}

// Client defines the interface for querying the transaction search service.
// This abstraction allows for easier testing and alternative implementations.
type Client interface {
	// TxsByHeight returns one page of the transactions finalized at height,
	// in execution order, starting at offset.
	TxsByHeight(ctx context.Context, height, offset uint64) ([]*types.Transaction, error)

	// TxsBySender returns one page of transactions matching the sender query.
	TxsBySender(ctx context.Context, query SenderQuery) ([]*types.Transaction, error)
}
