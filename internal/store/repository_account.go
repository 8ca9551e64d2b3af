package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/models"
)

// accountColumns is the canonical column order used by every account
// query; scanAccount relies on it.
var accountColumns = []string{"id", "name", "email", "address", "phone_number", "date_joined"}

// accountRepository is the SQL-backed implementation of
// [AccountRepository]. It handles account persistence against the
// "accounts" table through the shared [DB] handle.
//
// All methods obtain a context-scoped logger via [logger.FromContext]
// for structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database handle and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account record and returns the fully
// populated [models.Account] with store-assigned fields.
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new row.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(account.TableName()).
		Columns(accountColumns[1:]...).
		Values(account.Name, account.Email, account.Address, account.PhoneNumber, account.DateJoined).
		Suffix(returningAccountColumns()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error building insert query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")
		return models.Account{}, r.wrapDBError(err)
	}

	return created, nil
}

// FindAccountByID retrieves the account matching id.
//
// Returns [ErrNoAccountWasFound] when no row matches.
func (r *accountRepository) FindAccountByID(ctx context.Context, id int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(map[string]any{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByID").Msg("error building select query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", "*accountRepository.FindAccountByID").Int64("id", id).Msg("error finding account")
		return models.Account{}, r.wrapDBError(err)
	}

	return found, nil
}

// FindAllAccounts retrieves every account ordered by ID, narrowed by
// the optional name/email equality filters.
func (r *accountRepository) FindAllAccounts(ctx context.Context, filter models.AccountFilter) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select(accountColumns...).
		From(models.Account{}.TableName()).
		OrderBy("id ASC")

	if filter.Name != "" {
		builder = builder.Where(map[string]any{"name": filter.Name})
	}
	if filter.Email != "" {
		builder = builder.Where(map[string]any{"email": filter.Email})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAllAccounts").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAllAccounts").Msg("error listing accounts")
		return nil, r.wrapDBError(err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var account models.Account
		if err = rows.Scan(&account.ID, &account.Name, &account.Email, &account.Address, &account.PhoneNumber, &account.DateJoined); err != nil {
			log.Err(err).Str("func", "*accountRepository.FindAllAccounts").Msg("error scanning account rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAllAccounts").Msg("error iterating account rows")
		return nil, r.wrapDBError(err)
	}

	return accounts, nil
}

// UpdateAccount replaces the mutable fields of the row identified by
// account.ID and returns the stored result. The ID itself is never
// changed.
//
// Returns [ErrNoAccountWasFound] when the row no longer exists.
func (r *accountRepository) UpdateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(account.TableName()).
		Set("name", account.Name).
		Set("email", account.Email).
		Set("address", account.Address).
		Set("phone_number", account.PhoneNumber).
		Set("date_joined", account.DateJoined).
		Where(map[string]any{"id": account.ID}).
		Suffix(returningAccountColumns()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateAccount").Msg("error building update query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", "*accountRepository.UpdateAccount").Int64("id", account.ID).Msg("error updating account")
		return models.Account{}, r.wrapDBError(err)
	}

	return updated, nil
}

// DeleteAccount removes the row matching id.
//
// Returns [ErrNoAccountWasFound] when no row was deleted, so callers
// can distinguish a missing record from a successful removal.
func (r *accountRepository) DeleteAccount(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Account{}.TableName()).
		Where(map[string]any{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Int64("id", id).Msg("error deleting account")
		return r.wrapDBError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.wrapDBError(err)
	}
	if affected == 0 {
		return ErrNoAccountWasFound
	}

	return nil
}

// wrapDBError maps driver-level errors through the dialect's
// classifier; unclassified errors are wrapped as [ErrExecutingQuery].
func (r *accountRepository) wrapDBError(err error) error {
	if classified := r.db.errorClassificator.Classify(err); classified != nil {
		return fmt.Errorf("%w: %w", classified, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// scanAccount reads a single row laid out in [accountColumns] order.
func scanAccount(row *sql.Row) (models.Account, error) {
	var account models.Account
	err := row.Scan(&account.ID, &account.Name, &account.Email, &account.Address, &account.PhoneNumber, &account.DateJoined)
	return account, err
}

func returningAccountColumns() string {
	return "RETURNING id, name, email, address, phone_number, date_joined"
}
