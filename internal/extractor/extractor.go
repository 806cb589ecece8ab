package extractor

import (
	"context"
	"errors"
	"fmt"

	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/internal/types"
	"github.com/goran-ethernal/OrderScope/pkg/liquidation"
	"github.com/goran-ethernal/OrderScope/pkg/search"
)

// Extractor collects the liquidation messages a sender submitted in a height range.
type Extractor struct {
	search   search.Client
	relation liquidation.Relation
	log      *logger.Logger
}

// NewExtractor creates an Extractor producing records for relation.
func NewExtractor(client search.Client, relation liquidation.Relation, log *logger.Logger) *Extractor {
	return &Extractor{
		search:   client,
		relation: relation,
		log:      log,
	}
}

// ExtractLiquidations pages through the transactions sender submitted strictly
// between afterHeight and beforeHeight and returns one unflagged record per
// liquidation message, in the order the service lists them.
//
// Paging stops at the first empty page.
func (e *Extractor) ExtractLiquidations(
	ctx context.Context,
	sender string,
	afterHeight, beforeHeight uint64,
) ([]*liquidation.Record, error) {
	var records []*liquidation.Record

	query := search.SenderQuery{
		Sender:       sender,
		AfterHeight:  afterHeight,
		BeforeHeight: beforeHeight,
	}

	for {
		page, err := e.search.TxsBySender(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("failed to extract liquidations of %s: %w", sender, err)
		}
		if len(page) == 0 {
			break
		}
		senderPagesFetched.WithLabelValues(sender).Inc()

		for _, tx := range page {
			found, err := e.liquidations(tx)
			if err != nil {
				return nil, err
			}
			records = append(records, found...)
		}

		e.log.Debugw("sender page processed",
			"sender", sender,
			"offset", query.Offset,
			"transactions", len(page),
			"liquidations", len(records))

		query.Offset += search.PageSize
	}

	liquidationsExtracted.WithLabelValues(sender).Add(float64(len(records)))
	e.log.Infof("extracted %d liquidations of %s in (%d, %d)", len(records), sender, afterHeight, beforeHeight)

	return records, nil
}

func (e *Extractor) liquidations(tx *types.Transaction) ([]*liquidation.Record, error) {
	if !tx.IsContractExecute() {
		return nil, nil
	}

	msgs, err := tx.Messages()
	if errors.Is(err, types.ErrNoExecuteMessages) {
		e.log.Debugf("skipping %s: %v", tx.Hash, err)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []*liquidation.Record
	for i, msg := range msgs {
		if !msg.IsLiquidation() {
			continue
		}

		raw, err := msg.Raw()
		if err != nil {
			return nil, fmt.Errorf("failed to encode message %d of %s: %w", i, tx.Hash, err)
		}

		records = append(records, liquidation.NewRecord(tx.Hash, tx.Height, i, raw, tx.Sender(), e.relation))
	}

	return records, nil
}
