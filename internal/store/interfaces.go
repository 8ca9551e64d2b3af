package store

//go:generate mockgen -source=interfaces.go -destination=../mock/account_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/account-service/models"
)

// AccountRepository is the persistence contract for Account records.
// Every method performs exactly one store interaction; consistency is
// delegated to the database's own transaction semantics.
type AccountRepository interface {
	// CreateAccount inserts a new record and returns it with the
	// store-assigned ID populated.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccountByID returns the record matching id, or
	// [ErrNoAccountWasFound] if none exists.
	FindAccountByID(ctx context.Context, id int64) (models.Account, error)

	// FindAllAccounts returns every record ordered by ID, narrowed by
	// the optional equality filters.
	FindAllAccounts(ctx context.Context, filter models.AccountFilter) ([]models.Account, error)

	// UpdateAccount replaces the mutable fields of the record
	// identified by account.ID and returns the stored result.
	// Returns [ErrNoAccountWasFound] if the record no longer exists.
	UpdateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// DeleteAccount removes the record matching id. Returns
	// [ErrNoAccountWasFound] if no row was deleted.
	DeleteAccount(ctx context.Context, id int64) error
}

// ErrorClassificator translates driver-level errors into the store's
// sentinel error taxonomy. Classify returns one of the sentinel errors
// declared in errors.go, or nil when the error carries no recognisable
// driver classification.
type ErrorClassificator interface {
	Classify(err error) error
}
