package domain

import (
	"context"
	"errors"
	"time"
)

// Returned by CredentialStore.Insert when the database uniqueness
// constraints fire. These, not the service's pre-checks, are the
// authoritative duplicate guard under concurrent registration.
var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")
)

// CredentialStore is the narrow persistence contract for accounts.
// Find methods return (nil, nil) when no account matches.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	Insert(ctx context.Context, account *Account) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// NotificationDispatcher sends best-effort account emails. Callers treat
// every method as fire-and-forget: a send error is logged, never surfaced,
// and never rolls back the state change that preceded it.
type NotificationDispatcher interface {
	AccountCreated(ctx context.Context, email, username string) error
	ResetLink(ctx context.Context, email, username, token string) error
	PasswordChanged(ctx context.Context, email, username string) error
}
