package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/popxauth/internal/common"
	"github.com/dmitrijs2005/popxauth/internal/models"
	"github.com/dmitrijs2005/popxauth/internal/store"
)

// DocumentName is the well-known name of the accounts document. A missing
// document is equivalent to a collection that was never initialized.
const DocumentName = "accounts"

// DocumentRepository stores the account collection as one JSON document.
// Every mutation rewrites the document wholesale, so a failed operation
// leaves the previous collection intact.
type DocumentRepository struct {
	store    store.Store
	validate *validator.Validate
}

// NewDocumentRepository builds a repository over the given document store.
func NewDocumentRepository(s store.Store) *DocumentRepository {
	return &DocumentRepository{store: s, validate: validator.New()}
}

// load reads the current collection. initialized is false when the
// document has never been written (or was discarded as corrupt).
func (r *DocumentRepository) load(ctx context.Context) (accs []*models.Account, initialized bool, err error) {
	found, err := r.store.Load(ctx, DocumentName, &accs)
	if err != nil {
		return nil, false, err
	}
	return accs, found, nil
}

func (r *DocumentRepository) Register(ctx context.Context, input models.AccountInput) (*models.Account, error) {
	if err := r.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	accs, _, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	// Exact, case-sensitive match. Callers wanting stricter identity
	// should normalize the email before registering.
	for _, a := range accs {
		if a.Email == input.Email {
			return nil, common.ErrDuplicateEmail
		}
	}

	acc := input.Account(uuid.NewString())
	accs = append(accs, acc)

	if err := r.store.Save(ctx, DocumentName, accs); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return acc, nil
}

func (r *DocumentRepository) VerifyCredentials(ctx context.Context, email, secret string) (*models.Account, error) {
	accs, initialized, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("verify credentials: %w", err)
	}
	if !initialized {
		return nil, common.ErrNoAccounts
	}

	for _, a := range accs {
		if a.Email == email && a.Secret == secret {
			cp := *a
			return &cp, nil
		}
	}
	return nil, common.ErrInvalidCredentials
}

func (r *DocumentRepository) Update(ctx context.Context, id string, patch models.Patch) (*models.Account, error) {
	accs, _, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}

	var target *models.Account
	for _, a := range accs {
		if a.ID == id {
			target = a
			break
		}
	}
	if target == nil {
		return nil, common.ErrAccountNotFound
	}

	// An email change must not collide with another account, or the
	// collection-wide uniqueness invariant breaks.
	if patch.Email != nil {
		for _, a := range accs {
			if a.ID != id && a.Email == *patch.Email {
				return nil, common.ErrDuplicateEmail
			}
		}
	}

	merged := *target
	merged.Apply(patch)
	*target = merged

	if err := r.store.Save(ctx, DocumentName, accs); err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}

	cp := merged
	return &cp, nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	accs, _, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get by id: %w", err)
	}
	for _, a := range accs {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, common.ErrAccountNotFound
}

// validationError flattens validator output into a single error wrapping
// common.ErrValidation, with one readable message per failed field.
func validationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(msgs, "; "))
}

func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

var _ Repository = (*DocumentRepository)(nil)
