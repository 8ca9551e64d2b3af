package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/models"
)

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	l := logger.Nop()
	repo := &accountRepository{
		db: &DB{
			DB:                 db,
			builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func accountRows(accounts ...models.Account) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "email", "address", "phone_number", "date_joined"})
	for _, a := range accounts {
		rows.AddRow(a.ID, a.Name, a.Email, a.Address, a.PhoneNumber, a.DateJoined.Time)
	}
	return rows
}

var testAccount = models.Account{
	Name:        "Bea",
	Email:       "b@x.com",
	Address:     "1 Rd",
	PhoneNumber: "555-0100",
	DateJoined:  models.NewDate(2024, time.March, 5),
}

func TestCreateAccount_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	stored := testAccount
	stored.ID = 1

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(testAccount.Name, testAccount.Email, testAccount.Address, testAccount.PhoneNumber, sqlmock.AnyArg()).
		WillReturnRows(accountRows(stored))

	created, err := repo.CreateAccount(context.Background(), testAccount)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, testAccount.Name, created.Name)
	assert.Equal(t, testAccount.DateJoined, created.DateJoined)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_ConstraintViolation(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.CreateAccount(context.Background(), testAccount)
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestCreateAccount_ConnectionFailure(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateAccount(context.Background(), testAccount)
	assert.ErrorIs(t, err, ErrConnectionFailure)
}

func TestCreateAccount_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateAccount(context.Background(), testAccount)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindAccountByID_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	stored := testAccount
	stored.ID = 42

	mock.ExpectQuery("SELECT id, name, email, address, phone_number, date_joined FROM accounts").
		WithArgs(int64(42)).
		WillReturnRows(accountRows(stored))

	found, err := repo.FindAccountByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, stored, found)
}

func TestFindAccountByID_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, email, address, phone_number, date_joined FROM accounts").
		WithArgs(int64(0)).
		WillReturnRows(accountRows())

	_, err := repo.FindAccountByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNoAccountWasFound)
}

func TestFindAllAccounts_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	first := testAccount
	first.ID = 1
	second := testAccount
	second.ID = 2
	second.Name = "Ann"

	mock.ExpectQuery("SELECT id, name, email, address, phone_number, date_joined FROM accounts ORDER BY id ASC").
		WillReturnRows(accountRows(first, second))

	accounts, err := repo.FindAllAccounts(context.Background(), models.AccountFilter{})
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, first, accounts[0])
	assert.Equal(t, second, accounts[1])
}

func TestFindAllAccounts_Empty(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, email, address, phone_number, date_joined FROM accounts").
		WillReturnRows(accountRows())

	accounts, err := repo.FindAllAccounts(context.Background(), models.AccountFilter{})
	require.NoError(t, err)
	assert.Empty(t, accounts)
	assert.NotNil(t, accounts)
}

func TestFindAllAccounts_NameFilter(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	stored := testAccount
	stored.ID = 3

	mock.ExpectQuery("SELECT id, name, email, address, phone_number, date_joined FROM accounts WHERE name = ").
		WithArgs(stored.Name).
		WillReturnRows(accountRows(stored))

	accounts, err := repo.FindAllAccounts(context.Background(), models.AccountFilter{Name: stored.Name})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, stored, accounts[0])
}

func TestUpdateAccount_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	updated := testAccount
	updated.ID = 7
	updated.Name = "something known"

	mock.ExpectQuery("UPDATE accounts SET").
		WithArgs(updated.Name, updated.Email, updated.Address, updated.PhoneNumber, sqlmock.AnyArg(), updated.ID).
		WillReturnRows(accountRows(updated))

	got, err := repo.UpdateAccount(context.Background(), updated)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateAccount_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	missing := testAccount
	missing.ID = 99

	mock.ExpectQuery("UPDATE accounts SET").
		WillReturnRows(accountRows())

	_, err := repo.UpdateAccount(context.Background(), missing)
	assert.ErrorIs(t, err, ErrNoAccountWasFound)
}

func TestDeleteAccount_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM accounts").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteAccount(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAccount_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM accounts").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteAccount(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNoAccountWasFound)
}

func TestDeleteAccount_ExecError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM accounts").
		WillReturnError(errors.New("db is down"))

	err := repo.DeleteAccount(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
