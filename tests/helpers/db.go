package helpers

import (
	"database/sql"
	"path"
	"testing"

	"github.com/goran-ethernal/OrderScope/internal/db"
	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/internal/migrations"
	"github.com/goran-ethernal/OrderScope/pkg/config"
	"github.com/stretchr/testify/require"
)

// NewTestDB creates a migrated SQLite database in a temporary directory.
func NewTestDB(t *testing.T, dbName string) *sql.DB {
	t.Helper()

	database, _ := NewTestDBWithConfig(t, dbName)
	return database
}

// NewTestDBWithConfig is NewTestDB that also returns the config the database
// was opened with.
func NewTestDBWithConfig(t *testing.T, dbName string) (*sql.DB, config.DatabaseConfig) {
	t.Helper()

	dbConfig := config.DatabaseConfig{Path: path.Join(t.TempDir(), dbName)}
	dbConfig.ApplyDefaults()

	database, err := db.NewSQLiteDB(dbConfig)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, migrations.RunMigrations(logger.NewNopLogger(), database))

	return database, dbConfig
}
