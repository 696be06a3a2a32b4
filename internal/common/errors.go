// Package common defines shared constants and sentinel errors used across
// the PopX identity vault. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrDuplicateEmail  = errors.New("email already in use")
	ErrNoAccounts      = errors.New("no accounts registered")
	ErrAccountNotFound = errors.New("account not found")

	// Credential verification errors.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Session-level errors.
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrProfileImageUpdate = errors.New("profile image update failed")

	// Validation errors (register input).
	ErrValidation = errors.New("validation error")

	// Storage errors (unavailable or unwritable backing documents).
	ErrPersistence = errors.New("persistence failure")
)
