// Package accounts implements the account repository: the authoritative,
// durable collection of registered identities.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/popxauth/internal/models"
)

// Repository owns the durable account collection. It enforces email
// uniqueness, verifies credentials, and applies partial profile updates.
type Repository interface {
	// Register validates the input, assigns a fresh id, appends the new
	// account, and persists the whole collection before returning.
	// Fails with common.ErrDuplicateEmail when the email is already taken
	// and common.ErrValidation when the input is incomplete.
	Register(ctx context.Context, input models.AccountInput) (*models.Account, error)

	// VerifyCredentials returns the account matching both email and secret
	// exactly. Fails with common.ErrNoAccounts when the collection has
	// never been initialized and common.ErrInvalidCredentials otherwise.
	VerifyCredentials(ctx context.Context, email, secret string) (*models.Account, error)

	// Update applies the patch to the account with the given id and
	// persists the mutated collection. Fails with common.ErrAccountNotFound
	// when no such account exists.
	Update(ctx context.Context, id string, patch models.Patch) (*models.Account, error)

	// GetByID returns the account with the given id, or
	// common.ErrAccountNotFound.
	GetByID(ctx context.Context, id string) (*models.Account, error)
}
