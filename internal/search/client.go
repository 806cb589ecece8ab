package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/internal/types"
	"github.com/goran-ethernal/OrderScope/pkg/config"
	pkgsearch "github.com/goran-ethernal/OrderScope/pkg/search"
	"golang.org/x/time/rate"
)

// Compile-time check to ensure Client implements pkgsearch.Client interface.
var _ pkgsearch.Client = (*Client)(nil)

const searchPath = "/apikey/{apiKey}/transactions_search"

// heightRequest selects the transactions of one block.
type heightRequest struct {
	Network string `json:"network"`
	Height  uint64 `json:"height"`
	Offset  uint64 `json:"offset,omitempty"`
}

// senderRequest selects transactions of one sender inside a height range.
type senderRequest struct {
	Network      string   `json:"network"`
	Sender       []string `json:"sender"`
	AfterHeight  uint64   `json:"after_height"`
	BeforeHeight uint64   `json:"before_height"`
	Offset       uint64   `json:"offset"`
	Limit        int      `json:"limit"`
}

// Client queries the transaction search service over HTTP.
// It implements the pkgsearch.Client interface.
type Client struct {
	http    *resty.Client
	cfg     config.SearchConfig
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewClient creates a new search client for the configured service.
func NewClient(cfg config.SearchConfig, log *logger.Logger) *Client {
	c := &Client{
		cfg: cfg,
		log: log,
	}

	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	c.http = resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.Timeout.Duration).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		OnBeforeRequest(c.onRateLimit).
		OnAfterResponse(c.onStatusToError)

	return c
}

// TxsByHeight returns one page of the transactions finalized at height.
func (c *Client) TxsByHeight(ctx context.Context, height, offset uint64) ([]*types.Transaction, error) {
	req := heightRequest{
		Network: c.cfg.Network,
		Height:  height,
		Offset:  offset,
	}

	txs, err := c.query(ctx, queryByHeight, req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch block %d at offset %d: %w", height, offset, err)
	}

	for _, tx := range txs {
		if tx.Height != height {
			return nil, fmt.Errorf("%w: %s reported at height %d in block %d",
				types.ErrMalformedTransaction, tx.Hash, tx.Height, height)
		}
	}

	return txs, nil
}

// TxsBySender returns one page of transactions sent by query.Sender.
func (c *Client) TxsBySender(ctx context.Context, query pkgsearch.SenderQuery) ([]*types.Transaction, error) {
	req := senderRequest{
		Network:      c.cfg.Network,
		Sender:       []string{query.Sender},
		AfterHeight:  query.AfterHeight,
		BeforeHeight: query.BeforeHeight,
		Offset:       query.Offset,
		Limit:        pkgsearch.PageSize,
	}

	txs, err := c.query(ctx, queryBySender, req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions of %s at offset %d: %w", query.Sender, query.Offset, err)
	}

	return txs, nil
}

func (c *Client) query(ctx context.Context, query string, body any) ([]*types.Transaction, error) {
	searchRequestInc(query)
	start := time.Now()
	defer func() { searchRequestDuration(query, time.Since(start)) }()

	var raw []byte
	err := retryWithBackoff(ctx, c.cfg.Retry, query, func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetPathParam("apiKey", c.cfg.APIKey).
			SetBody(body).
			Post(searchPath)
		if err != nil {
			c.log.Debugw("search request failed", "query", query, "error", err)
			return err
		}

		raw = resp.Body()
		return nil
	})
	if err != nil {
		searchErrorInc(query, errorType(err))
		return nil, err
	}

	txs, err := decodeTransactions(raw)
	if err != nil {
		searchErrorInc(query, "decode")
		return nil, err
	}

	c.log.Debugw("search page received", "query", query, "transactions", len(txs))

	return txs, nil
}

// decodeTransactions parses a result page. A JSON null is an empty page.
func decodeTransactions(raw []byte) ([]*types.Transaction, error) {
	var txs []*types.Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		return nil, fmt.Errorf("%w: failed to decode search response: %w", types.ErrMalformedTransaction, err)
	}

	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
	}

	return txs, nil
}

func (c *Client) onRateLimit(_ *resty.Client, req *resty.Request) error {
	if c.limiter == nil {
		return nil
	}

	return c.limiter.Wait(req.Context())
}

func (c *Client) onStatusToError(_ *resty.Client, resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	c.log.Debugw("search service returned an error status",
		"status", resp.StatusCode(),
		"body", string(resp.Body()))

	return &StatusError{
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
	}
}

func errorType(err error) string {
	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("http_%d", statusErr.StatusCode)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "context"
	default:
		return "transport"
	}
}
