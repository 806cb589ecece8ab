package db

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/pkg/config"
	"github.com/goran-ethernal/OrderScope/pkg/liquidation"
	"github.com/russross/meddler"
	"github.com/stretchr/testify/require"
)

const testMigration = `
-- +migrate Down
DROP TABLE IF EXISTS test_table;

-- +migrate Up
CREATE TABLE IF NOT EXISTS test_table (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    value    TEXT NOT NULL,
    relation TEXT NOT NULL DEFAULT 'frontrun'
);
`

func openTestDB(t *testing.T, journal string) *sql.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "test.sqlite"),
		JournalMode: journal,
	}
	cfg.ApplyDefaults()

	sqlDB, err := NewSQLiteDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return sqlDB
}

func TestNewSQLiteDB_AppliesSettings(t *testing.T) {
	sqlDB := openTestDB(t, "WAL")

	var mode string
	require.NoError(t, sqlDB.QueryRow("PRAGMA journal_mode").Scan(&mode))
	require.Equal(t, "wal", mode)

	var fk int
	require.NoError(t, sqlDB.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	require.Equal(t, 1, fk)
}

func TestRunMigrations_UpAndDown(t *testing.T) {
	sqlDB := openTestDB(t, "WAL")
	log := logger.NewNopLogger()
	migs := []Migration{{ID: "001_test.sql", SQL: testMigration}}

	require.NoError(t, RunMigrations(log, sqlDB, migs))
	_, err := sqlDB.Exec(`INSERT INTO test_table (value) VALUES ('a')`)
	require.NoError(t, err)

	// applying again is a no-op
	require.NoError(t, RunMigrations(log, sqlDB, migs))

	require.NoError(t, RollbackMigrations(log, sqlDB, migs))
	_, err = sqlDB.Exec(`INSERT INTO test_table (value) VALUES ('a')`)
	require.Error(t, err)
}

func TestRunMigrations_MissingUpMarker(t *testing.T) {
	sqlDB := openTestDB(t, "WAL")

	err := RunMigrations(logger.NewNopLogger(), sqlDB, []Migration{
		{ID: "broken.sql", SQL: "CREATE TABLE x (id INTEGER);"},
	})
	require.ErrorContains(t, err, "broken.sql")
}

func TestCompact(t *testing.T) {
	for _, journal := range []string{"WAL", "TRUNCATE"} {
		t.Run(journal, func(t *testing.T) {
			sqlDB := openTestDB(t, journal)
			log := logger.NewNopLogger()
			require.NoError(t, RunMigrations(log, sqlDB, []Migration{{ID: "001_test.sql", SQL: testMigration}}))

			for i := range 500 {
				_, err := sqlDB.Exec(`INSERT INTO test_table (value) VALUES (?)`, fmt.Sprintf("value_%d", i))
				require.NoError(t, err)
			}
			_, err := sqlDB.Exec(`DELETE FROM test_table`)
			require.NoError(t, err)

			require.NoError(t, Compact(context.Background(), sqlDB, log))

			var count int
			require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM test_table`).Scan(&count))
			require.Zero(t, count)
		})
	}
}

type relationRow struct {
	ID       int64                `meddler:"id,pk"`
	Value    string               `meddler:"value"`
	Relation liquidation.Relation `meddler:"relation,relation"`
}

func TestRelationMeddler(t *testing.T) {
	sqlDB := openTestDB(t, "WAL")
	require.NoError(t, RunMigrations(logger.NewNopLogger(), sqlDB, []Migration{{ID: "001_test.sql", SQL: testMigration}}))

	row := &relationRow{Value: "a", Relation: liquidation.RelationBackrun}
	require.NoError(t, meddler.Insert(sqlDB, "test_table", row))

	var got relationRow
	require.NoError(t, meddler.Load(sqlDB, "test_table", &got, row.ID))
	require.Equal(t, liquidation.RelationBackrun, got.Relation)

	bad := &relationRow{Value: "b", Relation: liquidation.Relation("sideways")}
	require.Error(t, meddler.Insert(sqlDB, "test_table", bad))

	_, err := sqlDB.Exec(`INSERT INTO test_table (value, relation) VALUES ('c', 'sideways')`)
	require.NoError(t, err)

	var rows []*relationRow
	require.Error(t, meddler.QueryAll(sqlDB, &rows, `SELECT * FROM test_table`))
}
