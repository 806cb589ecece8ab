package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/goran-ethernal/OrderScope/internal/logger"
	migrate "github.com/rubenv/sql-migrate"
)

const (
	upMarker   = "-- +migrate Up"
	downMarker = "-- +migrate Down"
)

// Migration is one embedded SQL file holding a Down section followed by an
// Up section.
type Migration struct {
	ID  string
	SQL string
}

// RunMigrations applies every pending migration.
func RunMigrations(log *logger.Logger, db *sql.DB, migrations []Migration) error {
	return runMigrations(log, db, migrations, migrate.Up)
}

// RollbackMigrations reverts every applied migration.
func RollbackMigrations(log *logger.Logger, db *sql.DB, migrations []Migration) error {
	return runMigrations(log, db, migrations, migrate.Down)
}

func runMigrations(log *logger.Logger, db *sql.DB, migrations []Migration, dir migrate.MigrationDirection) error {
	source := &migrate.MemoryMigrationSource{}

	ids := make([]string, 0, len(migrations))
	for _, m := range migrations {
		parsed, err := parseMigration(m)
		if err != nil {
			return err
		}
		source.Migrations = append(source.Migrations, parsed)
		ids = append(ids, m.ID)
	}

	list := strings.Join(ids, ", ")
	log.Debugf("running migrations: %s", list)

	n, err := migrate.Exec(db, "sqlite3", source, dir)
	if err != nil {
		return fmt.Errorf("error executing migrations %s: %w", list, err)
	}

	log.Infof("successfully ran %d migrations from: %s", n, list)
	return nil
}

func parseMigration(m Migration) (*migrate.Migration, error) {
	parts := strings.SplitN(m.SQL, upMarker, 2) //nolint:mnd
	if len(parts) != 2 {                      //nolint:mnd
		return nil, fmt.Errorf("migration %s missing '%s' separator", m.ID, upMarker)
	}

	down := parts[0]
	if idx := strings.Index(down, downMarker); idx != -1 {
		down = down[idx+len(downMarker):]
	}

	return &migrate.Migration{
		Id:   m.ID,
		Up:   []string{strings.TrimSpace(parts[1])},
		Down: []string{strings.TrimSpace(down)},
	}, nil
}
