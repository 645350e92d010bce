// Package common defines shared constants and sentinel errors used across
// client and server layers of RecipeVault. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Token verification errors, in the order the checks run.
	ErrMalformedToken      = errors.New("malformed token")
	ErrSignatureMismatch   = errors.New("token signature mismatch")
	ErrInvalidTokenPayload = errors.New("invalid token payload")
	ErrTokenExpired        = errors.New("token expired")

	// Authentication flow errors.
	ErrUnsupportedMethod  = errors.New("unsupported method")
	ErrEmailNotFound      = errors.New("email not found")
	ErrWrongPassword      = errors.New("wrong password")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrMissingAccessToken = errors.New("missing access token")

	// Format validation errors, raised before any store or token interaction.
	ErrInvalidEmailFormat    = errors.New("invalid email format")
	ErrInvalidPasswordFormat = errors.New("invalid password format")
)
