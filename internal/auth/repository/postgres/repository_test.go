package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/domain"
	repo "github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/repository/postgres"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountColumns = []string{
	"id", "username", "password", "email", "verified", "salt",
	"date_created", "last_login", "admin",
}

func sampleAccount() *domain.Account {
	now := time.Now()
	return &domain.Account{
		ID:           "7cb7f7a2-27e8-4a32-a3f6-1f2a5bd1a111",
		Username:     "alice_01",
		Email:        "alice@example.com",
		PasswordHash: "ab12cd34",
		Salt:         "00ff00ff",
		Verified:     false,
		DateCreated:  now,
		LastLogin:    now,
		Admin:        false,
	}
}

func accountRow(a *domain.Account) *pgxmock.Rows {
	return pgxmock.NewRows(accountColumns).AddRow(
		a.ID, a.Username, a.PasswordHash, a.Email, a.Verified, a.Salt,
		a.DateCreated, a.LastLogin, a.Admin,
	)
}

func TestFindByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	expected := sampleAccount()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, password").
			WithArgs(expected.Username).
			WillReturnRows(accountRow(expected))

		account, err := r.FindByUsername(ctx, expected.Username)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, expected.ID, account.ID)
		assert.Equal(t, expected.Username, account.Username)
		assert.Equal(t, expected.PasswordHash, account.PasswordHash)
		assert.Equal(t, expected.Salt, account.Salt)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, password").
			WithArgs("nobody_1").
			WillReturnError(pgx.ErrNoRows)

		account, err := r.FindByUsername(ctx, "nobody_1")
		require.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, password").
			WithArgs(expected.Username).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.FindByUsername(ctx, expected.Username)
		assert.Error(t, err)
	})
}

func TestFindByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	expected := sampleAccount()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, password").
			WithArgs(expected.Email).
			WillReturnRows(accountRow(expected))

		account, err := r.FindByEmail(ctx, expected.Email)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, expected.Email, account.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, password").
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		account, err := r.FindByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, account)
	})
}

func TestInsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	account := sampleAccount()

	insertArgs := func(a *domain.Account) []any {
		return []any{
			a.ID, a.Username, a.PasswordHash, a.Email, a.Verified, a.Salt,
			a.DateCreated, a.LastLogin, a.Admin,
		}
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(insertArgs(account)...).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Insert(ctx, account))
	})

	t.Run("duplicate username", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(insertArgs(account)...).
			WillReturnError(&pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_username_key",
			})

		err := r.Insert(ctx, account)
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(insertArgs(account)...).
			WillReturnError(&pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_email_key",
			})

		err := r.Insert(ctx, account)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		mock.ExpectExec("INSERT INTO users").
			WithArgs(insertArgs(account)...).
			WillReturnError(dbErr)

		err := r.Insert(ctx, account)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, domain.ErrUsernameTaken)
	})
}

func TestUpdatePassword(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET password").
			WithArgs("newhash", "account-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.UpdatePassword(ctx, "account-1", "newhash"))
	})

	t.Run("no matching account", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET password").
			WithArgs("newhash", "missing-id").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.Error(t, r.UpdatePassword(ctx, "missing-id", "newhash"))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET password").
			WithArgs("newhash", "account-1").
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.UpdatePassword(ctx, "account-1", "newhash"))
	})
}

func TestUpdateLastLogin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET last_login").
			WithArgs(now, "account-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.UpdateLastLogin(ctx, "account-1", now))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET last_login").
			WithArgs(now, "account-1").
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.UpdateLastLogin(ctx, "account-1", now))
	})
}
