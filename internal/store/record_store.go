package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/goran-ethernal/OrderScope/internal/db"
	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/internal/metrics"
	"github.com/goran-ethernal/OrderScope/internal/migrations"
	"github.com/goran-ethernal/OrderScope/pkg/config"
	"github.com/goran-ethernal/OrderScope/pkg/liquidation"
	"github.com/goran-ethernal/OrderScope/pkg/store"
	"github.com/russross/meddler"
)

const (
	dbLabel        = "results"
	liquidationsTb = "liquidations"
)

var _ store.RecordStore = (*RecordStore)(nil)

// RecordStore implements store.RecordStore on SQLite.
type RecordStore struct {
	db            *sql.DB
	compactOnSave bool
	log           *logger.Logger
}

// Open opens the database described by cfg, brings its schema up to date and
// returns a store over it.
func Open(cfg config.DatabaseConfig, log *logger.Logger) (*RecordStore, error) {
	database, err := db.NewSQLiteDB(cfg)
	if err != nil {
		return nil, err
	}

	if err := migrations.RunMigrations(log, database); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s := NewRecordStore(database, log)
	s.compactOnSave = cfg.CompactOnSave
	return s, nil
}

// NewRecordStore creates a store over an already migrated database.
func NewRecordStore(database *sql.DB, log *logger.Logger) *RecordStore {
	return &RecordStore{
		db:  database,
		log: log,
	}
}

// SaveRun replaces the rows of every run's liquidator and relation.
func (s *RecordStore) SaveRun(ctx context.Context, runs ...store.Run) error {
	start := time.Now()
	metrics.DBQueryInc(dbLabel, "save_run")

	if err := s.saveRun(ctx, runs); err != nil {
		metrics.DBErrorsInc(dbLabel, "save_run")
		return err
	}
	metrics.DBQueryDuration(dbLabel, "save_run", time.Since(start))

	if s.compactOnSave {
		if err := db.Compact(ctx, s.db, s.log); err != nil {
			s.log.Warnf("failed to compact database after save: %v", err)
		}
	}

	return nil
}

func (s *RecordStore) saveRun(ctx context.Context, runs []store.Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			s.log.Errorf("failed to rollback transaction: %v", err)
		}
	}()

	analyzedAt := time.Now().UTC().Unix()

	for _, run := range runs {
		if !run.Relation.IsValid() {
			return fmt.Errorf("run for %s: invalid relation %q", run.Liquidator, run.Relation)
		}

		const deleteQuery = `DELETE FROM liquidations WHERE liquidator = ? AND relation = ?`
		if _, err := tx.ExecContext(ctx, deleteQuery, run.Liquidator, run.Relation.String()); err != nil {
			return fmt.Errorf("failed to delete previous run of %s: %w", run.Liquidator, err)
		}

		for _, rec := range run.Records {
			row := toRow(run.Liquidator, rec, analyzedAt)
			if err := meddler.Insert(tx, liquidationsTb, row); err != nil {
				return fmt.Errorf("failed to insert record %s/%d: %w", rec.Hash, rec.MessageIndex, err)
			}
		}

		s.log.Debugf("stored %d %s records for %s", len(run.Records), run.Relation, run.Liquidator)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetRecords returns matching records ordered by height, newest first.
func (s *RecordStore) GetRecords(ctx context.Context, q store.Query) ([]*liquidation.Record, error) {
	start := time.Now()
	metrics.DBQueryInc(dbLabel, "get_records")

	where, args := whereClause(q)
	query := "SELECT * FROM liquidations" + where + " ORDER BY height DESC, hash ASC, msg_index ASC"

	if q.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, q.Limit, q.Offset)
	} else if q.Offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		args = append(args, q.Offset)
	}

	var rows []*recordRow
	if err := meddler.QueryAll(s.db, &rows, query, args...); err != nil {
		metrics.DBErrorsInc(dbLabel, "get_records")
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	metrics.DBQueryDuration(dbLabel, "get_records", time.Since(start))

	records := make([]*liquidation.Record, len(rows))
	for i, row := range rows {
		records[i] = row.toRecord()
	}

	return records, nil
}

// Count returns the number of records matching q.
func (s *RecordStore) Count(ctx context.Context, q store.Query) (int, error) {
	metrics.DBQueryInc(dbLabel, "count")

	where, args := whereClause(q)

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM liquidations"+where, args...).Scan(&count); err != nil {
		metrics.DBErrorsInc(dbLabel, "count")
		return 0, fmt.Errorf("failed to count records: %w", err)
	}

	return count, nil
}

// ListLiquidators returns one summary per stored liquidator and relation.
func (s *RecordStore) ListLiquidators(ctx context.Context) ([]store.LiquidatorSummary, error) {
	metrics.DBQueryInc(dbLabel, "list_liquidators")

	const query = `
		SELECT liquidator, relation,
			COUNT(*) AS total,
			COALESCE(SUM(flagged), 0) AS flagged,
			MIN(height) AS min_height,
			MAX(height) AS max_height,
			MAX(analyzed_at) AS analyzed_at
		FROM liquidations
		GROUP BY liquidator, relation
		ORDER BY liquidator ASC, relation ASC
	`

	var rows []*summaryRow
	if err := meddler.QueryAll(s.db, &rows, query); err != nil {
		metrics.DBErrorsInc(dbLabel, "list_liquidators")
		return nil, fmt.Errorf("failed to list liquidators: %w", err)
	}

	summaries := make([]store.LiquidatorSummary, len(rows))
	for i, row := range rows {
		summaries[i] = store.LiquidatorSummary{
			Liquidator:  row.Liquidator,
			Relation:    row.Relation,
			Total:       row.Total,
			Flagged:     row.Flagged,
			MinHeight:   row.MinHeight,
			MaxHeight:   row.MaxHeight,
			LastUpdated: time.Unix(row.AnalyzedAt, 0).UTC(),
		}
	}

	return summaries, nil
}

// Close closes the underlying database.
func (s *RecordStore) Close() error {
	return s.db.Close()
}

func whereClause(q store.Query) (string, []any) {
	conds := []string{"liquidator = ?"}
	args := []any{q.Liquidator}

	if q.Relation != "" {
		conds = append(conds, "relation = ?")
		args = append(args, q.Relation.String())
	}
	if q.FromHeight != nil {
		conds = append(conds, "height >= ?")
		args = append(args, *q.FromHeight)
	}
	if q.ToHeight != nil {
		conds = append(conds, "height <= ?")
		args = append(args, *q.ToHeight)
	}
	if q.FlaggedOnly {
		conds = append(conds, "flagged = 1")
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

type recordRow struct {
	ID             int64                `meddler:"id,pk"`
	Liquidator     string               `meddler:"liquidator"`
	Relation       liquidation.Relation `meddler:"relation,relation"`
	Hash           string               `meddler:"hash"`
	MessageIndex   int                  `meddler:"msg_index"`
	Height         uint64               `meddler:"height"`
	Sender         string               `meddler:"sender"`
	ExecuteMessage string               `meddler:"execute_message"`
	Flagged        bool                 `meddler:"flagged"`
	AnalyzedAt     int64                `meddler:"analyzed_at"`
}

func toRow(liquidator string, rec *liquidation.Record, analyzedAt int64) *recordRow {
	return &recordRow{
		Liquidator:     liquidator,
		Relation:       rec.Relation,
		Hash:           rec.Hash,
		MessageIndex:   rec.MessageIndex,
		Height:         rec.Height,
		Sender:         rec.Sender,
		ExecuteMessage: string(rec.ExecuteMessage),
		Flagged:        rec.Flagged(),
		AnalyzedAt:     analyzedAt,
	}
}

func (r *recordRow) toRecord() *liquidation.Record {
	var msg json.RawMessage
	if r.ExecuteMessage != "" {
		msg = json.RawMessage(r.ExecuteMessage)
	}

	return liquidation.Restore(r.Hash, r.Height, r.MessageIndex, msg, r.Sender, r.Relation, r.Flagged)
}

type summaryRow struct {
	Liquidator string               `meddler:"liquidator"`
	Relation   liquidation.Relation `meddler:"relation,relation"`
	Total      int                  `meddler:"total"`
	Flagged    int                  `meddler:"flagged"`
	MinHeight  uint64               `meddler:"min_height"`
	MaxHeight  uint64               `meddler:"max_height"`
	AnalyzedAt int64                `meddler:"analyzed_at"`
}
