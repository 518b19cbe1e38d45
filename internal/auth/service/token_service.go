package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// reportedExpiryMargin is subtracted from the access token's real expiry
// when reporting expires_in to clients, so they refresh slightly early.
const reportedExpiryMargin = time.Minute

type TokenGenerator interface {
	IssueRefreshToken(username string) (string, time.Time, error)
	IssueAccessToken(username, refreshToken string) (string, time.Time, error)
	VerifyAccessToken(tokenString string) (*Claims, error)
	IssueResetToken(username string) (string, time.Time, error)
	VerifyResetToken(tokenString string) (*Claims, error)
	IssueLoginBundle(username string) (*TokenBundle, error)
}

// TokenService signs and verifies bearer tokens under two independent
// secrets, one per token kind. Both secrets are loaded once at startup and
// never change for the life of the process.
type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// TokenBundle is the pair of tokens issued on register, login, and
// password-reset completion. The ExpiresAt fields are the instants
// reported to the client, with the early-refresh margin already applied
// to the access token.
type TokenBundle struct {
	AccessToken      string
	RefreshToken     string
	IssuedAt         time.Time
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

func (ts *TokenService) sign(username, secret string, expiry time.Duration, now time.Time) (string, error) {
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func (ts *TokenService) verify(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// IssueRefreshToken signs a refresh token for username under the refresh
// secret. The returned time is the token's expiry.
func (ts *TokenService) IssueRefreshToken(username string) (string, time.Time, error) {
	now := time.Now()

	token, err := ts.sign(username, ts.RefreshTokenSecret, ts.RefreshTokenExpiry, now)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, now.Add(ts.RefreshTokenExpiry), nil
}

// IssueAccessToken verifies refreshToken under the refresh secret and, on
// success, signs a new access token for username. The refresh token's own
// username claim must match the requested username; a mismatch is rejected
// rather than silently minting for the caller's choice of name. The
// returned time is the reported expiry (real expiry minus the margin).
func (ts *TokenService) IssueAccessToken(username, refreshToken string) (string, time.Time, error) {
	claims, err := ts.verify(refreshToken, ts.RefreshTokenSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("refresh token rejected: %w", err)
	}

	if claims.Username != username {
		return "", time.Time{}, fmt.Errorf("refresh token does not belong to %q", username)
	}

	now := time.Now()

	token, err := ts.sign(username, ts.AccessTokenSecret, ts.AccessTokenExpiry, now)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, now.Add(ts.AccessTokenExpiry - reportedExpiryMargin), nil
}

// VerifyAccessToken parses and validates the given access token string.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*Claims, error) {
	return ts.verify(tokenString, ts.AccessTokenSecret)
}

// IssueResetToken mints the token embedded in password-reset links. It
// deliberately reuses the access-token signing path, so any valid access
// token also authorizes a reset; kept as a named seam for future
// narrowing rather than widened silently.
func (ts *TokenService) IssueResetToken(username string) (string, time.Time, error) {
	now := time.Now()

	token, err := ts.sign(username, ts.AccessTokenSecret, ts.AccessTokenExpiry, now)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, now.Add(ts.AccessTokenExpiry - reportedExpiryMargin), nil
}

// VerifyResetToken validates a password-reset token. Same seam as
// IssueResetToken.
func (ts *TokenService) VerifyResetToken(tokenString string) (*Claims, error) {
	return ts.verify(tokenString, ts.AccessTokenSecret)
}

// IssueLoginBundle signs both token kinds for username.
func (ts *TokenService) IssueLoginBundle(username string) (*TokenBundle, error) {
	now := time.Now()

	accessToken, err := ts.sign(username, ts.AccessTokenSecret, ts.AccessTokenExpiry, now)
	if err != nil {
		return nil, err
	}

	refreshToken, err := ts.sign(username, ts.RefreshTokenSecret, ts.RefreshTokenExpiry, now)
	if err != nil {
		return nil, err
	}

	return &TokenBundle{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		IssuedAt:         now,
		AccessExpiresAt:  now.Add(ts.AccessTokenExpiry - reportedExpiryMargin),
		RefreshExpiresAt: now.Add(ts.RefreshTokenExpiry),
	}, nil
}
