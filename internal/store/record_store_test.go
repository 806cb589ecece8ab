package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/pkg/liquidation"
	"github.com/goran-ethernal/OrderScope/pkg/store"
	"github.com/goran-ethernal/OrderScope/tests/helpers"
	"github.com/stretchr/testify/require"
)

var liquidationMsg = json.RawMessage(`{"liquidate_collateral":{"borrower":"terra1borrower"}}`)

func newTestStore(t *testing.T) *RecordStore {
	t.Helper()

	return NewRecordStore(helpers.NewTestDB(t, "results.sqlite"), logger.NewNopLogger())
}

func rec(hash string, height uint64, msgIndex int, relation liquidation.Relation, flagged bool) *liquidation.Record {
	r := liquidation.NewRecord(hash, height, msgIndex, liquidationMsg, helpers.Liquidator, relation)
	if flagged {
		r.Flag()
	}
	return r
}

func ptr(v uint64) *uint64 {
	return &v
}

func TestRecordStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	records := []*liquidation.Record{
		rec("AAA", 100, 0, liquidation.RelationFrontrun, true),
		rec("AAA", 100, 1, liquidation.RelationFrontrun, false),
		rec("BBB", 120, 0, liquidation.RelationFrontrun, false),
		rec("CCC", 90, 0, liquidation.RelationFrontrun, true),
	}
	require.NoError(t, s.SaveRun(ctx, store.Run{
		Liquidator: helpers.Liquidator,
		Relation:   liquidation.RelationFrontrun,
		Records:    records,
	}))

	got, err := s.GetRecords(ctx, store.Query{Liquidator: helpers.Liquidator})
	require.NoError(t, err)
	require.Len(t, got, 4)

	require.Equal(t, "BBB", got[0].Hash)
	require.Equal(t, "AAA", got[1].Hash)
	require.Equal(t, 0, got[1].MessageIndex)
	require.True(t, got[1].Flagged())
	require.Equal(t, 1, got[2].MessageIndex)
	require.False(t, got[2].Flagged())
	require.Equal(t, "CCC", got[3].Hash)

	require.Equal(t, liquidation.RelationFrontrun, got[0].Relation)
	require.Equal(t, helpers.Liquidator, got[0].Sender)
	require.JSONEq(t, string(liquidationMsg), string(got[0].ExecuteMessage))
}

func TestRecordStore_Filters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.SaveRun(ctx,
		store.Run{
			Liquidator: helpers.Liquidator,
			Relation:   liquidation.RelationFrontrun,
			Records: []*liquidation.Record{
				rec("A", 100, 0, liquidation.RelationFrontrun, true),
				rec("B", 110, 0, liquidation.RelationFrontrun, false),
				rec("C", 120, 0, liquidation.RelationFrontrun, true),
				rec("D", 130, 0, liquidation.RelationFrontrun, false),
			},
		},
		store.Run{
			Liquidator: helpers.Liquidator,
			Relation:   liquidation.RelationBackrun,
			Records: []*liquidation.Record{
				rec("A", 100, 0, liquidation.RelationBackrun, false),
			},
		},
		store.Run{
			Liquidator: helpers.Liquidator2,
			Relation:   liquidation.RelationFrontrun,
			Records: []*liquidation.Record{
				rec("Z", 105, 0, liquidation.RelationFrontrun, true),
			},
		},
	))

	tests := []struct {
		name  string
		query store.Query
		want  []string
		count int
	}{
		{
			name:  "all relations",
			query: store.Query{Liquidator: helpers.Liquidator},
			want:  []string{"D", "C", "B", "A", "A"},
			count: 5,
		},
		{
			name:  "relation",
			query: store.Query{Liquidator: helpers.Liquidator, Relation: liquidation.RelationBackrun},
			want:  []string{"A"},
			count: 1,
		},
		{
			name: "height range inclusive",
			query: store.Query{
				Liquidator: helpers.Liquidator,
				Relation:   liquidation.RelationFrontrun,
				FromHeight: ptr(110),
				ToHeight:   ptr(120),
			},
			want:  []string{"C", "B"},
			count: 2,
		},
		{
			name: "flagged only",
			query: store.Query{
				Liquidator:  helpers.Liquidator,
				Relation:    liquidation.RelationFrontrun,
				FlaggedOnly: true,
			},
			want:  []string{"C", "A"},
			count: 2,
		},
		{
			name: "limit and offset",
			query: store.Query{
				Liquidator: helpers.Liquidator,
				Relation:   liquidation.RelationFrontrun,
				Limit:      2,
				Offset:     1,
			},
			want:  []string{"C", "B"},
			count: 4,
		},
		{
			name: "offset without limit",
			query: store.Query{
				Liquidator: helpers.Liquidator,
				Relation:   liquidation.RelationFrontrun,
				Offset:     3,
			},
			want:  []string{"A"},
			count: 4,
		},
		{
			name:  "unknown liquidator",
			query: store.Query{Liquidator: helpers.Bystander},
			want:  []string{},
			count: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.GetRecords(ctx, tt.query)
			require.NoError(t, err)

			hashes := make([]string, len(got))
			for i, r := range got {
				hashes[i] = r.Hash
			}
			require.Equal(t, tt.want, hashes)

			count, err := s.Count(ctx, tt.query)
			require.NoError(t, err)
			require.Equal(t, tt.count, count)
		})
	}
}

func TestRecordStore_SaveRunReplaces(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	run := store.Run{
		Liquidator: helpers.Liquidator,
		Relation:   liquidation.RelationFrontrun,
		Records: []*liquidation.Record{
			rec("A", 100, 0, liquidation.RelationFrontrun, false),
			rec("B", 110, 0, liquidation.RelationFrontrun, false),
		},
	}
	require.NoError(t, s.SaveRun(ctx, run))

	run.Records = []*liquidation.Record{rec("C", 120, 0, liquidation.RelationFrontrun, true)}
	require.NoError(t, s.SaveRun(ctx, run))

	got, err := s.GetRecords(ctx, store.Query{Liquidator: helpers.Liquidator})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "C", got[0].Hash)
	require.True(t, got[0].Flagged())
}

func TestRecordStore_SaveRunIsAtomic(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first := store.Run{
		Liquidator: helpers.Liquidator,
		Relation:   liquidation.RelationFrontrun,
		Records:    []*liquidation.Record{rec("A", 100, 0, liquidation.RelationFrontrun, false)},
	}
	require.NoError(t, s.SaveRun(ctx, first))

	// duplicate (hash, msg_index) violates the unique constraint
	broken := store.Run{
		Liquidator: helpers.Liquidator,
		Relation:   liquidation.RelationFrontrun,
		Records: []*liquidation.Record{
			rec("B", 110, 0, liquidation.RelationFrontrun, false),
			rec("B", 110, 0, liquidation.RelationFrontrun, false),
		},
	}
	require.Error(t, s.SaveRun(ctx, broken))

	got, err := s.GetRecords(ctx, store.Query{Liquidator: helpers.Liquidator})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "A", got[0].Hash)
}

func TestRecordStore_SaveRunInvalidRelation(t *testing.T) {
	s := newTestStore(t)

	err := s.SaveRun(context.Background(), store.Run{Liquidator: helpers.Liquidator, Relation: "sideways"})
	require.ErrorContains(t, err, "invalid relation")
}

func TestRecordStore_ListLiquidators(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	summaries, err := s.ListLiquidators(ctx)
	require.NoError(t, err)
	require.Empty(t, summaries)

	require.NoError(t, s.SaveRun(ctx,
		store.Run{
			Liquidator: helpers.Liquidator,
			Relation:   liquidation.RelationFrontrun,
			Records: []*liquidation.Record{
				rec("A", 100, 0, liquidation.RelationFrontrun, true),
				rec("B", 150, 0, liquidation.RelationFrontrun, false),
			},
		},
		store.Run{
			Liquidator: helpers.Liquidator2,
			Relation:   liquidation.RelationFrontrun,
			Records: []*liquidation.Record{
				rec("C", 120, 0, liquidation.RelationFrontrun, false),
			},
		},
	))

	summaries, err = s.ListLiquidators(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byLiquidator := map[string]store.LiquidatorSummary{}
	for _, sum := range summaries {
		byLiquidator[sum.Liquidator] = sum
	}

	first := byLiquidator[helpers.Liquidator]
	require.Equal(t, liquidation.RelationFrontrun, first.Relation)
	require.Equal(t, 2, first.Total)
	require.Equal(t, 1, first.Flagged)
	require.Equal(t, uint64(100), first.MinHeight)
	require.Equal(t, uint64(150), first.MaxHeight)
	require.False(t, first.LastUpdated.IsZero())

	second := byLiquidator[helpers.Liquidator2]
	require.Equal(t, 1, second.Total)
	require.Zero(t, second.Flagged)
}

func TestOpen_CompactsOnSave(t *testing.T) {
	_, cfg := helpers.NewTestDBWithConfig(t, "compact.sqlite")
	cfg.CompactOnSave = true

	s, err := Open(cfg, logger.NewNopLogger())
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.SaveRun(ctx, store.Run{
		Liquidator: helpers.Liquidator,
		Relation:   liquidation.RelationFrontrun,
		Records:    []*liquidation.Record{rec("A", 100, 0, liquidation.RelationFrontrun, true)},
	}))

	count, err := s.Count(ctx, store.Query{Liquidator: helpers.Liquidator})
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
