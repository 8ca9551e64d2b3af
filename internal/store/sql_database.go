package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/account-service/internal/config"
	"github.com/MKhiriev/account-service/internal/logger"
)

// DB wraps the shared *sql.DB handle together with the SQL dialect
// helpers the repositories need: a squirrel statement builder carrying
// the driver's placeholder format and a driver-specific error
// classifier.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database selected by the DSN scheme, verifies the
// connection, and prepares the schema.
//
// A "postgres://" or "postgresql://" DSN connects via the pgx driver
// and applies the embedded goose migrations. Any other DSN is treated
// as a SQLite database file path; the file is created when missing and
// the schema is bootstrapped inline.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
