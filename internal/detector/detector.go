package detector

import (
	"context"
	"errors"
	"fmt"

	"github.com/goran-ethernal/OrderScope/internal/common"
	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/internal/metrics"
	"github.com/goran-ethernal/OrderScope/internal/types"
	"github.com/goran-ethernal/OrderScope/pkg/fetcher"
	"github.com/goran-ethernal/OrderScope/pkg/liquidation"
)

// Detector decides whether a liquidation sat next to the oracle feeder's
// price update in execution order.
//
// Starting from the liquidation, it walks one transaction at a time in the
// direction of the record's relation (forward for frontrun, backward for
// backrun). Contract executions by the liquidator are walked over, so a run
// of liquidations is treated as one unit. The first other transaction
// decides: a contract execution by the oracle feeder flags the record,
// anything else does not. Only a record at the edge of its block in the scan
// direction continues into the neighboring block, from its near edge, and
// stops there. A walk that runs off the block from any other position is
// not flagged.
type Detector struct {
	blocks       fetcher.BlockFetcher
	oracleFeeder string
	log          *logger.Logger
}

// NewDetector creates a Detector that looks for price updates from oracleFeeder.
func NewDetector(blocks fetcher.BlockFetcher, oracleFeeder string, log *logger.Logger) *Detector {
	metrics.ComponentHealthSet(common.ComponentDetector, true)

	return &Detector{
		blocks:       blocks,
		oracleFeeder: oracleFeeder,
		log:          log,
	}
}

// Detect checks rec and flags it when it stands in its relation to a price
// update. It returns the record's resulting flag. Records that are already
// flagged are not checked again.
func (d *Detector) Detect(ctx context.Context, rec *liquidation.Record) (bool, error) {
	if rec.Flagged() {
		return true, nil
	}
	if !rec.Relation.IsValid() {
		return false, fmt.Errorf("record %s: invalid relation %q", rec.Hash, rec.Relation)
	}

	relation := rec.Relation.String()
	step := rec.Relation.Step()

	block, err := d.blocks.GetBlock(ctx, rec.Height)
	if err != nil {
		return false, fmt.Errorf("failed to fetch block %d of %s: %w", rec.Height, rec.Hash, err)
	}

	pos, err := d.position(block, rec)
	if err != nil {
		return false, err
	}
	if pos < 0 {
		outcomeInc(relation, outcomeNotFound)
		d.log.Warnf("liquidation %s not found in block %d (%d transactions), left unflagged",
			rec.Hash, rec.Height, len(block))
		return false, nil
	}

	flag, decided := d.scan(block, pos+step, step, rec.Sender)

	if !decided && atEdge(block, pos, step) {
		flag, err = d.scanNeighbor(ctx, rec, step)
		if err != nil {
			return false, err
		}
	}

	if flag {
		rec.Flag()
		outcomeInc(relation, outcomeFlagged)
	} else {
		outcomeInc(relation, outcomeNotFlagged)
	}

	d.log.Debugw("liquidation checked",
		"hash", rec.Hash,
		"height", rec.Height,
		"relation", relation,
		"flagged", flag)

	return flag, nil
}

// DetectAll checks every record independently and returns how many are flagged.
func (d *Detector) DetectAll(ctx context.Context, records []*liquidation.Record) (int, error) {
	flagged := 0
	for _, rec := range records {
		ok, err := d.Detect(ctx, rec)
		if err != nil {
			return 0, err
		}
		if ok {
			flagged++
		}
	}

	return flagged, nil
}

// position re-derives the index of rec's transaction in block. It returns -1
// when no contract execution with the record's hash, sender and a
// liquidation message is present.
func (d *Detector) position(block types.Block, rec *liquidation.Record) (int, error) {
	for i, tx := range block {
		if tx.Hash != rec.Hash || !tx.IsContractExecute() || !tx.IsFrom(rec.Sender) {
			continue
		}

		msgs, err := tx.Messages()
		if errors.Is(err, types.ErrNoExecuteMessages) {
			continue
		}
		if err != nil {
			return -1, err
		}

		for _, msg := range msgs {
			if msg.IsLiquidation() {
				return i, nil
			}
		}
	}

	return -1, nil
}

// scan walks block from index from in steps of step. decided is false when
// the walk ran off the block without meeting a deciding transaction.
func (d *Detector) scan(block types.Block, from, step int, liquidator string) (flag, decided bool) {
	for i := from; i >= 0 && i < len(block); i += step {
		tx := block[i]

		if !tx.IsContractExecute() {
			return false, true
		}
		if tx.IsFrom(liquidator) {
			continue
		}

		return tx.IsFrom(d.oracleFeeder), true
	}

	return false, false
}

func atEdge(block types.Block, pos, step int) bool {
	if step < 0 {
		return pos == 0
	}
	return pos == len(block)-1
}

func (d *Detector) scanNeighbor(ctx context.Context, rec *liquidation.Record, step int) (bool, error) {
	if step < 0 && rec.Height <= 1 {
		return false, nil
	}

	height := rec.Height + 1
	if step < 0 {
		height = rec.Height - 1
	}

	neighborLookups.WithLabelValues(rec.Relation.String()).Inc()

	block, err := d.blocks.GetBlock(ctx, height)
	if err != nil {
		return false, fmt.Errorf("failed to fetch neighbor block %d of %s: %w", height, rec.Hash, err)
	}

	start := 0
	if step < 0 {
		start = len(block) - 1
	}

	flag, _ := d.scan(block, start, step, rec.Sender)

	return flag, nil
}
