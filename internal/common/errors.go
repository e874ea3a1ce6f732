// Package common defines shared constants and sentinel errors used across
// the webauth server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration conflicts. Checked in order: email first, then number.
	ErrorDuplicateEmail  = errors.New("email already registered")
	ErrorDuplicateNumber = errors.New("number already registered")

	// ErrorPasswordMismatch is returned when password and its confirmation
	// differ at registration.
	ErrorPasswordMismatch = errors.New("passwords don't match")

	// ErrorInvalidCredentials covers both an unknown email and a wrong
	// password. Login deliberately never distinguishes the two.
	ErrorInvalidCredentials = errors.New("incorrect email or password")

	// Auth errors (token missing, invalid, malformed or revoked).
	ErrorMissingToken = errors.New("missing token")
	ErrInvalidToken   = errors.New("invalid token")
)
