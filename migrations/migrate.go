// Package migrations embeds the goose SQL migrations for every supported
// database dialect and applies them.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB              = errors.New("migration error: db is nil")
	ErrUnsupportedDialect = errors.New("migration error: unsupported driver")
)

// dialects maps a configured driver name to the goose dialect and the
// embedded directory holding its migrations.
var dialects = map[string]struct {
	goose string
	dir   string
}{
	"postgres": {goose: "postgres", dir: "postgres"},
	"sqlite":   {goose: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations for driver ("postgres" or "sqlite").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return ErrNilDB
	}

	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDialect, driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
