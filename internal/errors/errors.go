// Package errors defines the failure taxonomy shared by the auth service
// and its HTTP layer. Every service-level failure is an *Error carrying a
// Kind (which the handler maps to a status code) and a Reason string that
// is safe to return to the caller. Storage errors additionally wrap the
// underlying driver error for logging; that detail never reaches a response.
package errors

import "errors"

type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindAuthentication
	KindNotFound
	KindStorage
)

// Reasons surfaced verbatim to callers.
const (
	ReasonUserExists      = "User already exists"
	ReasonEmailExists     = "Email already exists"
	ReasonUserNotFound    = "User does not exist"
	ReasonWrongPassword   = "Incorrect password"
	ReasonBadRefreshToken = "Invalid refresh token"
	ReasonBadAccessToken  = "Invalid access token"
	ReasonServerError     = "Server error"
	ReasonBadIdentifier   = "Invalid username / email"
	ReasonInvalidUsername = "Invalid username"
	ReasonInvalidPassword = "Invalid password"
	ReasonInvalidEmail    = "Invalid email"
	ReasonInvalidSignup   = "Invalid username, password, or email"
)

type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(reason string) *Error {
	return &Error{Kind: KindValidation, Reason: reason}
}

func Conflict(reason string) *Error {
	return &Error{Kind: KindConflict, Reason: reason}
}

func Authentication(reason string) *Error {
	return &Error{Kind: KindAuthentication, Reason: reason}
}

func NotFound(reason string) *Error {
	return &Error{Kind: KindNotFound, Reason: reason}
}

// Storage wraps an internal failure. The Reason is always the opaque
// "Server error"; err is kept for logs only.
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Reason: ReasonServerError, Err: err}
}

// KindOf reports the Kind of err when it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Reason returns the caller-safe reason string for err, falling back to
// "Server error" for anything outside the taxonomy.
func Reason(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ReasonServerError
}
