// Package common defines shared constants and sentinel errors used across
// AuthGate components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("email and password are required")

	// ErrorUnauthorized covers both "no such account" and "wrong password";
	// the two cases are deliberately indistinguishable to the caller.
	ErrorUnauthorized = errors.New("invalid email or password")

	// Auth errors (invalid, malformed, or expired token).
	ErrInvalidToken = errors.New("invalid token")
)
