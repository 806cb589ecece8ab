package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/goran-ethernal/OrderScope/internal/logger"
)

// Compact checkpoints the WAL (when the database runs in WAL mode) and then
// vacuums it to reclaim the pages freed by replaced runs. The caller must not
// hold an open transaction on db.
func Compact(ctx context.Context, db *sql.DB, log *logger.Logger) error {
	start := time.Now()

	if err := walCheckpoint(ctx, db, log); err != nil {
		compactionErrorInc()
		return err
	}

	if _, err := db.ExecContext(ctx, "VACUUM"); err != nil {
		compactionErrorInc()
		if strings.Contains(err.Error(), "database is locked") {
			return fmt.Errorf("cannot vacuum: database is locked (retry later)")
		}
		return fmt.Errorf("vacuum failed: %w", err)
	}

	compactionSuccessInc()
	compactionDurationLog(time.Since(start))
	log.Debugf("database compacted in %v", time.Since(start))

	return nil
}

func walCheckpoint(ctx context.Context, db *sql.DB, log *logger.Logger) error {
	var mode string
	if err := db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode); err != nil {
		return fmt.Errorf("failed to check journal mode: %w", err)
	}
	if !strings.EqualFold(mode, "wal") {
		return nil
	}

	var busy, logFrames, checkpointed int
	err := db.QueryRowContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)").Scan(&busy, &logFrames, &checkpointed)
	if err != nil {
		return fmt.Errorf("failed to execute WAL checkpoint: %w", err)
	}

	if busy > 0 {
		log.Warnf("WAL checkpoint encountered %d busy pages", busy)
	}

	return nil
}
