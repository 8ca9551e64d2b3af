package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/internal/store"
	"github.com/MKhiriev/account-service/models"
)

// accountService is the concrete implementation of AccountService.
// It enforces the required-field rules before any store mutation and
// fills in creation-time defaults.
type accountService struct {
	// accountRepository is the data-access layer used to persist and
	// look up accounts.
	accountRepository store.AccountRepository

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAccountService constructs an AccountService wired to the given
// repository.
//
// The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewAccountService(accountRepository store.AccountRepository, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		logger:            logger,
	}
}

// Create validates the account and persists it.
//
// The inbound ID is zeroed so the store always assigns the primary
// key, and a missing join date defaults to the current date. Returns
// the persisted record or:
//   - a validation sentinel error if a required field is empty
//     (no store call is made);
//   - a wrapped storage error if the repository call fails.
func (a *accountService) Create(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := validateAccount(account); err != nil {
		log.Error().Err(err).Msg("invalid account data provided")
		return models.Account{}, err
	}

	account.ID = 0
	if account.DateJoined.IsZero() {
		account.DateJoined = models.Today()
	}

	created, err := a.accountRepository.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return created, nil
}

// Get returns the account matching id, or a wrapped
// [store.ErrNoAccountWasFound] when it does not exist.
func (a *accountService) Get(ctx context.Context, id int64) (models.Account, error) {
	found, err := a.accountRepository.FindAccountByID(ctx, id)
	if err != nil {
		return models.Account{}, fmt.Errorf("account lookup ended with error: %w", err)
	}

	return found, nil
}

// List returns every stored account ordered by ID, narrowed by the
// optional name/email filters.
func (a *accountService) List(ctx context.Context, filter models.AccountFilter) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	accounts, err := a.accountRepository.FindAllAccounts(ctx, filter)
	if err != nil {
		log.Err(err).Msg("account listing ended with error")
		return nil, fmt.Errorf("account listing ended with error: %w", err)
	}

	log.Debug().Int("count", len(accounts)).Msg("returning accounts")
	return accounts, nil
}

// Update validates the account and replaces the stored record
// identified by account.ID. A missing join date defaults to today so
// an update can never null out the column.
func (a *accountService) Update(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := validateAccount(account); err != nil {
		log.Error().Err(err).Msg("invalid account data provided")
		return models.Account{}, err
	}

	if account.DateJoined.IsZero() {
		account.DateJoined = models.Today()
	}

	updated, err := a.accountRepository.UpdateAccount(ctx, account)
	if err != nil {
		log.Err(err).Int64("id", account.ID).Msg("account update ended with error")
		return models.Account{}, fmt.Errorf("account update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes the account matching id, or returns a wrapped
// [store.ErrNoAccountWasFound] when it does not exist.
func (a *accountService) Delete(ctx context.Context, id int64) error {
	if err := a.accountRepository.DeleteAccount(ctx, id); err != nil {
		return fmt.Errorf("account deletion ended with error: %w", err)
	}

	return nil
}

// validateAccount checks the required-field rules shared by Create and
// Update. It never touches the store.
func validateAccount(account models.Account) error {
	switch {
	case account.Name == "":
		return ErrValidationNoName
	case account.Email == "":
		return ErrValidationNoEmail
	case account.Address == "":
		return ErrValidationNoAddress
	}

	return nil
}
