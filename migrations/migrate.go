package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed pg/*.sql sqlite/*.sql
var embedMigrations embed.FS

// migrationDirs maps a database driver to its migration directory. The two
// engines need different column syntax for generated keys, so each carries
// its own scripts.
var migrationDirs = map[string]string{
	"pgx":     "pg",
	"sqlite3": "sqlite",
}

func Migrate(db *sql.DB, driver string) error {
	dir, ok := migrationDirs[driver]
	if !ok {
		return fmt.Errorf("migration error: no migrations for driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
