package dto

import "time"

// TokenOutput pairs a signed token with the absolute instant the client
// should treat it as expired. For access tokens this is one minute earlier
// than the token's own cryptographic expiry, as an early-refresh margin.
type TokenOutput struct {
	Token     string    `json:"token"`
	ExpiresIn time.Time `json:"expires_in"`
}
