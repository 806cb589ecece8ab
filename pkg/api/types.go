package api

import (
	"time"

	"github.com/goran-ethernal/OrderScope/internal/report"
	"github.com/goran-ethernal/OrderScope/pkg/liquidation"
	"github.com/goran-ethernal/OrderScope/pkg/store"
)

// RecordsResponse is a page of stored liquidation records.
type RecordsResponse struct {
	Liquidator string                `json:"liquidator"`
	Records    []*liquidation.Record `json:"records"`
	Pagination PaginationResult      `json:"pagination"`
}

// PaginationResult contains pagination metadata.
type PaginationResult struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// StatsResponse holds flagged counts for one liquidator and relation.
type StatsResponse struct {
	Liquidator  string               `json:"liquidator"`
	Relation    liquidation.Relation `json:"relation"`
	SplitHeight uint64               `json:"split_height,omitempty"`
	report.Stats
}

// BucketsResponse holds flagged and normal counts per height bucket.
type BucketsResponse struct {
	Liquidator string               `json:"liquidator"`
	Relation   liquidation.Relation `json:"relation"`
	FromHeight uint64               `json:"from_height"`
	ToHeight   uint64               `json:"to_height"`
	Size       uint64               `json:"size"`
	Buckets    []report.Bucket      `json:"buckets"`
}

// LiquidatorInfo describes a stored liquidator and where to query it.
type LiquidatorInfo struct {
	store.LiquidatorSummary
	Endpoints []string `json:"endpoints"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	StoreOK     bool      `json:"store_ok"`
	Liquidators int       `json:"liquidators"`
}
