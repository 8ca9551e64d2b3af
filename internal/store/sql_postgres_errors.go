package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for
// PostgreSQL. It inspects the pgconn error code returned by the pgx
// driver and maps it to one of the store's sentinel errors.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier]
// ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err
// as a *pgconn.PgError and delegates to [ClassifyPgError]. If err is
// nil or is not a PostgreSQL driver error, nil is returned and the
// caller falls back to its generic wrapping.
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return nil
}

// ClassifyPgError maps a *pgconn.PgError to a sentinel error based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
// for the full list of PostgreSQL error codes.
//
// Mapped classes:
//   - Class 08 — connection exceptions → [ErrConnectionFailure]
//   - Class 57 — cannot connect now → [ErrConnectionFailure]
//   - Class 23 — integrity constraint violations → [ErrConstraintViolation]
//
// Any other code is left unclassified (nil).
func ClassifyPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return ErrConnectionFailure

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow: // 57P03
		return ErrConnectionFailure

	// Class 23 — integrity constraint violations
	case pgerrcode.IntegrityConstraintViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.UniqueViolation,
		pgerrcode.CheckViolation:
		return ErrConstraintViolation
	}

	return nil
}
