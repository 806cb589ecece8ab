package migrations

import (
	"database/sql"
	_ "embed"

	"github.com/goran-ethernal/OrderScope/internal/db"
	"github.com/goran-ethernal/OrderScope/internal/logger"
)

//go:embed 001_liquidations.sql
var mig001 string

var all = []db.Migration{
	{
		ID:  "001_liquidations.sql",
		SQL: mig001,
	},
}

// RunMigrations brings the result store schema up to date.
func RunMigrations(log *logger.Logger, database *sql.DB) error {
	return db.RunMigrations(log, database, all)
}

// Rollback drops the result store schema.
func Rollback(log *logger.Logger, database *sql.DB) error {
	return db.RollbackMigrations(log, database, all)
}
