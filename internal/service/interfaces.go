package service

import (
	"context"

	"github.com/MKhiriev/account-service/models"
)

// AccountService is the application-level contract for the Account
// lifecycle. It validates inbound data and applies defaults before
// delegating persistence to the repository layer.
type AccountService interface {
	// Create validates the account, defaults a missing join date to
	// today, and persists it. The inbound ID is ignored; the store
	// assigns one.
	Create(ctx context.Context, account models.Account) (models.Account, error)

	// Get returns the account matching id.
	Get(ctx context.Context, id int64) (models.Account, error)

	// List returns every account, narrowed by the optional filters.
	List(ctx context.Context, filter models.AccountFilter) ([]models.Account, error)

	// Update validates the account and replaces the stored record
	// identified by account.ID in place.
	Update(ctx context.Context, account models.Account) (models.Account, error)

	// Delete removes the account matching id.
	Delete(ctx context.Context, id int64) error
}

// AppInfoService exposes the service's identity for the index
// endpoint.
type AppInfoService interface {
	// GetAppName returns the human-readable service name.
	GetAppName(ctx context.Context) string

	// GetAppVersion returns the running application version.
	GetAppVersion(ctx context.Context) string
}
