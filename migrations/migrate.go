// Package migrations applies the embedded schema migrations for the
// configured store driver at startup.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"copper_shop/internal/config"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate runs all pending migrations for the given driver. The SQL
// differs per dialect (identity columns, timestamp defaults), so each
// driver has its own migration directory.
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	var dialect, dir string
	switch driver {
	case config.DriverPostgres:
		dialect, dir = "postgres", "postgres"
	case config.DriverSQLite:
		dialect, dir = "sqlite3", "sqlite"
	default:
		return fmt.Errorf("migrations: unknown driver %q", driver)
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
