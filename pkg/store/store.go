package store

import (
	"context"
	"time"

	"github.com/goran-ethernal/OrderScope/pkg/liquidation"
)

// Run is the set of records produced for one liquidator and relation.
type Run struct {
	Liquidator string
	Relation   liquidation.Relation
	Records    []*liquidation.Record
}

// Query selects stored records of one liquidator. Nil bounds and an empty
// relation match everything; a zero Limit returns every matching record.
type Query struct {
	Liquidator  string
	Relation    liquidation.Relation
	FromHeight  *uint64
	ToHeight    *uint64
	FlaggedOnly bool
	Limit       int
	Offset      int
}

// LiquidatorSummary describes what is stored for one liquidator and relation.
type LiquidatorSummary struct {
	Liquidator  string               `json:"liquidator"`
	Relation    liquidation.Relation `json:"relation"`
	Total       int                  `json:"total"`
	Flagged     int                  `json:"flagged"`
	MinHeight   uint64               `json:"min_height"`
	MaxHeight   uint64               `json:"max_height"`
	LastUpdated time.Time            `json:"last_updated"`
}

// Reader gives read access to stored analysis results.
type Reader interface {
	// GetRecords returns matching records ordered by height, newest first.
	GetRecords(ctx context.Context, q Query) ([]*liquidation.Record, error)

	// Count returns the number of records matching q, ignoring Limit and Offset.
	Count(ctx context.Context, q Query) (int, error)

	// ListLiquidators returns one summary per stored liquidator and relation.
	ListLiquidators(ctx context.Context) ([]LiquidatorSummary, error)
}

// RecordStore persists analysis results.
type RecordStore interface {
	Reader

	// SaveRun replaces the stored records of every given liquidator and
	// relation pair. All runs are written in one transaction.
	SaveRun(ctx context.Context, runs ...Run) error

	// Close releases the underlying database.
	Close() error
}
