package report

import (
	"bytes"
	"math"
	"testing"

	"github.com/goran-ethernal/OrderScope/pkg/config"
	"github.com/goran-ethernal/OrderScope/pkg/liquidation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(hash string, height uint64, flagged bool) *liquidation.Record {
	rec := liquidation.NewRecord(hash, height, 0, nil, "terra1liq", liquidation.RelationFrontrun)
	if flagged {
		rec.Flag()
	}
	return rec
}

func TestSummarize(t *testing.T) {
	records := []*liquidation.Record{
		record("A", 100, true),
		record("B", 150, false),
		record("C", 200, true),
		record("D", 250, false),
		record("E", 260, false),
	}

	t.Run("no split", func(t *testing.T) {
		stats := Summarize(records, 0)

		require.Equal(t, 5, stats.Total)
		require.Equal(t, 2, stats.Flagged)
		require.InDelta(t, 40.0, stats.Percent, 0.0001)
		require.Nil(t, stats.Before)
		require.Nil(t, stats.After)
	})

	t.Run("split height counts as after", func(t *testing.T) {
		stats := Summarize(records, 200)

		require.NotNil(t, stats.Before)
		require.NotNil(t, stats.After)
		assert.Equal(t, Period{Total: 2, Flagged: 1, Percent: 50}, *stats.Before)
		assert.Equal(t, 3, stats.After.Total)
		assert.Equal(t, 1, stats.After.Flagged)
		assert.InDelta(t, 33.3333, stats.After.Percent, 0.001)
	})

	t.Run("empty periods report zero percent", func(t *testing.T) {
		stats := Summarize(records, 50)

		require.Equal(t, Period{}, *stats.Before)
		require.Equal(t, 5, stats.After.Total)
	})

	t.Run("no records", func(t *testing.T) {
		stats := Summarize(nil, 0)
		require.Equal(t, Stats{}, stats)
	})
}

func TestBucketize(t *testing.T) {
	records := []*liquidation.Record{
		record("A", 100, true),
		record("B", 109, false),
		record("C", 110, false),
		record("D", 125, true),
		record("E", 99, true),
		record("F", 130, true),
	}

	buckets, err := Bucketize(records, 100, 130, 10)
	require.NoError(t, err)

	require.Equal(t, []Bucket{
		{StartHeight: 100, Flagged: 1, Normal: 1},
		{StartHeight: 110, Flagged: 0, Normal: 1},
		{StartHeight: 120, Flagged: 1, Normal: 0},
	}, buckets)
}

func TestBucketize_PartialLastBucket(t *testing.T) {
	buckets, err := Bucketize([]*liquidation.Record{record("A", 124, false)}, 100, 125, 10)
	require.NoError(t, err)

	require.Len(t, buckets, 3)
	require.Equal(t, uint64(120), buckets[2].StartHeight)
	require.Equal(t, 1, buckets[2].Normal)
}

func TestBucketize_Degenerate(t *testing.T) {
	for _, tc := range []struct{ from, to, size uint64 }{
		{100, 100, 10},
		{100, 200, 0},
		{200, 100, 10},
	} {
		buckets, err := Bucketize(nil, tc.from, tc.to, tc.size)
		require.NoError(t, err)
		require.Nil(t, buckets)
	}
}

func TestBucketize_TooManyBuckets(t *testing.T) {
	tests := []struct {
		name           string
		from, to, size uint64
	}{
		{name: "just over the limit", from: 0, to: config.MaxBuckets + 1, size: 1},
		{name: "huge range", from: 0, to: 1 << 62, size: 1},
		{name: "max height", from: 0, to: math.MaxUint64, size: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets, err := Bucketize([]*liquidation.Record{record("A", 5, true)}, tt.from, tt.to, tt.size)
			require.ErrorIs(t, err, ErrTooManyBuckets)
			require.Nil(t, buckets)
		})
	}
}

func TestBucketize_AtLimit(t *testing.T) {
	buckets, err := Bucketize(nil, 0, config.MaxBuckets, 1)
	require.NoError(t, err)
	require.Len(t, buckets, config.MaxBuckets)
}

func TestBucketCount(t *testing.T) {
	require.Equal(t, uint64(3), BucketCount(100, 125, 10))
	require.Equal(t, uint64(3), BucketCount(100, 130, 10))
	require.Equal(t, uint64(0), BucketCount(100, 100, 10))
	require.Equal(t, uint64(math.MaxUint64), BucketCount(0, math.MaxUint64, 1))
}

func TestFlaggedHashes(t *testing.T) {
	second := liquidation.NewRecord("A", 100, 1, nil, "terra1liq", liquidation.RelationFrontrun)
	second.Flag()

	records := []*liquidation.Record{
		record("A", 100, true),
		second,
		record("B", 101, false),
		record("C", 102, true),
	}

	require.Equal(t, []string{"A", "C"}, FlaggedHashes(records))
}

func TestWriteFlagged(t *testing.T) {
	result := &Result{
		Records: []*liquidation.Record{
			record("A", 100, true),
			record("B", 101, false),
			record("C", 102, true),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteFlagged(&buf, result))
	require.Equal(t, "A\nC\n", buf.String())
}

func TestWriteSummary(t *testing.T) {
	records := []*liquidation.Record{
		record("A", 100, true),
		record("B", 150, false),
		record("C", 200, true),
		record("D", 250, false),
	}

	t.Run("with split", func(t *testing.T) {
		result := &Result{
			Liquidator:  "terra1liq",
			Relation:    liquidation.RelationFrontrun,
			FromHeight:  90,
			ToHeight:    300,
			SplitHeight: 200,
			Stats:       Summarize(records, 200),
		}

		var buf bytes.Buffer
		require.NoError(t, WriteSummary(&buf, result))

		want := "\nterra1liq (frontrun)\n" +
			"90 to 200:\nTotal: 2\nFrontrun: 1\nPercent frontrun: 50.00%\n" +
			"\n" +
			"200 to 300:\nTotal: 2\nFrontrun: 1\nPercent frontrun: 50.00%\n"
		require.Equal(t, want, buf.String())
	})

	t.Run("without split", func(t *testing.T) {
		result := &Result{
			Liquidator: "terra1liq",
			Relation:   liquidation.RelationBackrun,
			FromHeight: 90,
			ToHeight:   300,
			Stats:      Summarize(records, 0),
		}

		var buf bytes.Buffer
		require.NoError(t, WriteSummary(&buf, result))
		require.Contains(t, buf.String(), "90 to 300:\nTotal: 4\nBackrun: 2\nPercent backrun: 50.00%\n")
	})
}
