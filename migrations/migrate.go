// Package migrations embeds the goose migration scripts for the
// accounts schema and applies them at startup.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var accountSchemaFS embed.FS

// Migrate brings the accounts schema up to date on the given
// connection. The dialect comes from the store's DSN dispatch; only
// the PostgreSQL backend runs migrations, SQLite bootstraps its schema
// inline.
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(accountSchemaFS)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("setting goose dialect %q: %w", dialect, err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("applying accounts migrations: %w", err)
	}

	return nil
}
