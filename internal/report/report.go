package report

import (
	"errors"
	"fmt"

	"github.com/goran-ethernal/OrderScope/pkg/config"
	"github.com/goran-ethernal/OrderScope/pkg/liquidation"
)

// ErrTooManyBuckets is returned when a range would need more than
// config.MaxBuckets buckets.
var ErrTooManyBuckets = errors.New("too many buckets")

// Result is the outcome of analyzing one liquidator.
type Result struct {
	Liquidator  string                `json:"liquidator"`
	Relation    liquidation.Relation  `json:"relation"`
	FromHeight  uint64                `json:"from_height"`
	ToHeight    uint64                `json:"to_height"`
	SplitHeight uint64                `json:"split_height,omitempty"`
	Records     []*liquidation.Record `json:"records"`
	Stats       Stats                 `json:"stats"`
	Buckets     []Bucket              `json:"buckets"`
}

// Period counts records in a height range.
type Period struct {
	Total   int     `json:"total"`
	Flagged int     `json:"flagged"`
	Percent float64 `json:"percent"`
}

// Stats summarizes how many records were flagged. Before and After are only
// set when a split height was given.
type Stats struct {
	Period
	Before *Period `json:"before,omitempty"`
	After  *Period `json:"after,omitempty"`
}

// Bucket counts flagged and normal records in [StartHeight, StartHeight+size).
type Bucket struct {
	StartHeight uint64 `json:"start_height"`
	Flagged     int    `json:"flagged"`
	Normal      int    `json:"normal"`
}

func (p *Period) add(flagged bool) {
	p.Total++
	if flagged {
		p.Flagged++
	}
}

func (p *Period) finish() {
	if p.Total > 0 {
		p.Percent = float64(p.Flagged) / float64(p.Total) * 100 //nolint:mnd
	}
}

// Summarize counts records overall and, when splitHeight is not zero, before
// and after it. A record at splitHeight counts as after.
func Summarize(records []*liquidation.Record, splitHeight uint64) Stats {
	var stats Stats
	if splitHeight != 0 {
		stats.Before = &Period{}
		stats.After = &Period{}
	}

	for _, rec := range records {
		flagged := rec.Flagged()
		stats.add(flagged)

		if splitHeight == 0 {
			continue
		}
		if rec.Height < splitHeight {
			stats.Before.add(flagged)
		} else {
			stats.After.add(flagged)
		}
	}

	stats.finish()
	if splitHeight != 0 {
		stats.Before.finish()
		stats.After.finish()
	}

	return stats
}

// BucketCount returns how many buckets of size heights cover [from, to).
func BucketCount(from, to, size uint64) uint64 {
	if size == 0 || to <= from {
		return 0
	}

	span := to - from
	count := span / size
	if span%size != 0 {
		count++
	}
	return count
}

// Bucketize groups records into consecutive buckets of size heights starting
// at from. Every bucket up to to is returned, empty ones included; records
// outside [from, to) are ignored. Ranges needing more than config.MaxBuckets
// buckets are rejected with ErrTooManyBuckets.
func Bucketize(records []*liquidation.Record, from, to, size uint64) ([]Bucket, error) {
	count := BucketCount(from, to, size)
	if count == 0 {
		return nil, nil
	}
	if count > config.MaxBuckets {
		return nil, fmt.Errorf("%w: [%d, %d) in buckets of %d needs %d, limit is %d",
			ErrTooManyBuckets, from, to, size, count, config.MaxBuckets)
	}

	buckets := make([]Bucket, count)
	for i := range buckets {
		buckets[i].StartHeight = from + uint64(i)*size
	}

	for _, rec := range records {
		if rec.Height < from || rec.Height >= to {
			continue
		}

		b := &buckets[(rec.Height-from)/size]
		if rec.Flagged() {
			b.Flagged++
		} else {
			b.Normal++
		}
	}

	return buckets, nil
}

// FlaggedHashes returns the hashes of flagged records in record order. A
// transaction with several flagged messages is listed once.
func FlaggedHashes(records []*liquidation.Record) []string {
	seen := make(map[string]bool)

	var hashes []string
	for _, rec := range records {
		if !rec.Flagged() || seen[rec.Hash] {
			continue
		}
		seen[rec.Hash] = true
		hashes = append(hashes, rec.Hash)
	}

	return hashes
}
