package service

//go:generate mockgen -destination=../../mocks/mock_credential_store.go -package=mocks github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/domain CredentialStore,NotificationDispatcher

import (
	"context"
	"errors"
	"time"

	"github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/domain"
	"github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/dto"
	"github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/password"
	"github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/validate"
	autherr "github.com/Reynaldo-Martinez2021/Bet-Mate/internal/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const statusSuccess = "success"

// UserService orchestrates registration, login, token refresh, and the
// password-reset flow. It holds no mutable state of its own; everything
// durable lives behind the CredentialStore.
type UserService struct {
	store      domain.CredentialStore
	tokens     TokenGenerator
	dispatcher domain.NotificationDispatcher
}

func NewUserService(store domain.CredentialStore, tokens TokenGenerator, dispatcher domain.NotificationDispatcher) *UserService {
	return &UserService{
		store:      store,
		tokens:     tokens,
		dispatcher: dispatcher,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.RegisterOutput, error) {
	if !validate.IsValidUsername(input.Username) ||
		!validate.IsValidPassword(input.Password) ||
		!validate.IsValidEmail(input.Email) {
		return nil, autherr.Validation(autherr.ReasonInvalidSignup)
	}

	// Pre-checks give the common duplicate case a friendly answer, but the
	// store's uniqueness constraints are the real guard; Insert below can
	// still report a duplicate that raced past these.
	existing, err := s.store.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, s.storage("find account by username", err)
	}
	if existing != nil {
		return nil, autherr.Conflict(autherr.ReasonUserExists)
	}

	existing, err = s.store.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, s.storage("find account by email", err)
	}
	if existing != nil {
		return nil, autherr.Conflict(autherr.ReasonEmailExists)
	}

	salt, err := password.GenerateSalt()
	if err != nil {
		return nil, s.storage("generate salt", err)
	}

	now := time.Now()

	account := &domain.Account{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: password.Derive(input.Password, salt),
		Salt:         salt,
		Verified:     false,
		DateCreated:  now,
		LastLogin:    now,
		Admin:        false,
	}

	if err := s.store.Insert(ctx, account); err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			return nil, autherr.Conflict(autherr.ReasonUserExists)
		case errors.Is(err, domain.ErrEmailTaken):
			return nil, autherr.Conflict(autherr.ReasonEmailExists)
		}
		return nil, s.storage("insert account", err)
	}

	bundle, err := s.tokens.IssueLoginBundle(account.Username)
	if err != nil {
		return nil, s.storage("issue login bundle", err)
	}

	s.dispatch("account created", func() error {
		return s.dispatcher.AccountCreated(ctx, account.Email, account.Username)
	})

	return &dto.RegisterOutput{
		Username:     account.Username,
		Email:        account.Email,
		Status:       statusSuccess,
		AccessToken:  accessOutput(bundle),
		RefreshToken: refreshOutput(bundle),
	}, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	if !validate.IsValidPassword(input.Password) {
		return nil, autherr.Validation(autherr.ReasonInvalidPassword)
	}

	lookup, ok := s.classifyIdentifier(input.Username)
	if !ok {
		return nil, autherr.Validation(autherr.ReasonBadIdentifier)
	}

	account, err := lookup(ctx)
	if err != nil {
		return nil, s.storage("find account", err)
	}
	if account == nil {
		return nil, autherr.NotFound(autherr.ReasonUserNotFound)
	}

	if !password.Verify(input.Password, account.Salt, account.PasswordHash) {
		return nil, autherr.Authentication(autherr.ReasonWrongPassword)
	}

	if err := s.store.UpdateLastLogin(ctx, account.ID, time.Now()); err != nil {
		logrus.WithError(err).WithField("username", account.Username).
			Warn("failed to update last_login")
	}

	bundle, err := s.tokens.IssueLoginBundle(account.Username)
	if err != nil {
		return nil, s.storage("issue login bundle", err)
	}

	return &dto.LoginOutput{
		Username:     account.Username,
		Status:       statusSuccess,
		AccessToken:  accessOutput(bundle),
		RefreshToken: refreshOutput(bundle),
	}, nil
}

func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.RefreshOutput, error) {
	if !validate.IsValidUsername(input.Username) {
		return nil, autherr.Validation(autherr.ReasonInvalidUsername)
	}

	token, expiresAt, err := s.tokens.IssueAccessToken(input.Username, input.RefreshToken)
	if err != nil {
		// Signature, expiry, and ownership failures all collapse into the
		// same answer; the caller learns nothing about which check failed.
		return nil, autherr.Authentication(autherr.ReasonBadRefreshToken)
	}

	return &dto.RefreshOutput{
		Username: input.Username,
		Status:   statusSuccess,
		AccessToken: dto.TokenOutput{
			Token:     token,
			ExpiresIn: expiresAt,
		},
	}, nil
}

func (s *UserService) InitiatePasswordReset(ctx context.Context, email string) (*dto.ForgotPasswordOutput, error) {
	if !validate.IsValidEmail(email) {
		return nil, autherr.Validation(autherr.ReasonInvalidEmail)
	}

	account, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, s.storage("find account by email", err)
	}
	if account == nil {
		return nil, autherr.NotFound(autherr.ReasonUserNotFound)
	}

	token, _, err := s.tokens.IssueResetToken(account.Username)
	if err != nil {
		return nil, s.storage("issue reset token", err)
	}

	s.dispatch("password reset link", func() error {
		return s.dispatcher.ResetLink(ctx, account.Email, account.Username, token)
	})

	return &dto.ForgotPasswordOutput{
		Status: statusSuccess,
		Email:  email,
	}, nil
}

func (s *UserService) CompletePasswordReset(ctx context.Context, input dto.ResetPasswordInput) (*dto.LoginOutput, error) {
	if !validate.IsValidUsername(input.Username) {
		return nil, autherr.Validation(autherr.ReasonInvalidUsername)
	}
	if !validate.IsValidPassword(input.Password) {
		return nil, autherr.Validation(autherr.ReasonInvalidPassword)
	}

	if _, err := s.tokens.VerifyResetToken(input.Token); err != nil {
		return nil, autherr.Authentication(autherr.ReasonBadAccessToken)
	}

	account, err := s.store.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, s.storage("find account by username", err)
	}
	if account == nil {
		return nil, autherr.NotFound(autherr.ReasonUserNotFound)
	}

	// The new hash reuses the account's original salt.
	hash := password.Derive(input.Password, account.Salt)
	if err := s.store.UpdatePassword(ctx, account.ID, hash); err != nil {
		return nil, s.storage("update password", err)
	}

	bundle, err := s.tokens.IssueLoginBundle(account.Username)
	if err != nil {
		return nil, s.storage("issue login bundle", err)
	}

	s.dispatch("password changed", func() error {
		return s.dispatcher.PasswordChanged(ctx, account.Email, account.Username)
	})

	return &dto.LoginOutput{
		Username:     account.Username,
		Status:       statusSuccess,
		AccessToken:  accessOutput(bundle),
		RefreshToken: refreshOutput(bundle),
	}, nil
}

// classifyIdentifier resolves whether a login identifier is an email or a
// username and returns the matching lookup. Explicit two-branch dispatch;
// identifiers passing neither validator never reach the store.
func (s *UserService) classifyIdentifier(identifier string) (func(context.Context) (*domain.Account, error), bool) {
	switch {
	case validate.IsValidEmail(identifier):
		return func(ctx context.Context) (*domain.Account, error) {
			return s.store.FindByEmail(ctx, identifier)
		}, true
	case validate.IsValidUsername(identifier):
		return func(ctx context.Context) (*domain.Account, error) {
			return s.store.FindByUsername(ctx, identifier)
		}, true
	}
	return nil, false
}

// dispatch runs a best-effort notification send. Failures are logged and
// dropped; they never unwind the state change that preceded them.
func (s *UserService) dispatch(what string, send func() error) {
	if s.dispatcher == nil {
		return
	}
	if err := send(); err != nil {
		logrus.WithError(err).WithField("notification", what).
			Warn("failed to send notification")
	}
}

// storage logs the internal failure with detail and returns the opaque
// storage error surfaced to callers.
func (s *UserService) storage(op string, err error) error {
	logrus.WithError(err).WithField("op", op).Error("credential store failure")
	return autherr.Storage(err)
}

func accessOutput(b *TokenBundle) dto.TokenOutput {
	return dto.TokenOutput{Token: b.AccessToken, ExpiresIn: b.AccessExpiresAt}
}

func refreshOutput(b *TokenBundle) dto.TokenOutput {
	return dto.TokenOutput{Token: b.RefreshToken, ExpiresIn: b.RefreshExpiresAt}
}
