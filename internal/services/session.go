// Package services contains the application services of the PopX identity
// vault. This file implements the session manager: the single active login,
// its persistence, and profile mutation on top of the account repository.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/popxauth/internal/common"
	"github.com/dmitrijs2005/popxauth/internal/logging"
	"github.com/dmitrijs2005/popxauth/internal/models"
	"github.com/dmitrijs2005/popxauth/internal/repositories/accounts"
	"github.com/dmitrijs2005/popxauth/internal/store"
)

// SessionDocumentName is the well-known name of the session document.
// Absence of the document means no one is logged in.
const SessionDocumentName = "session"

// Status is the three-way session readiness tag. Callers gating views on
// authentication must wait for the status to leave StatusUndetermined;
// until Restore has run, neither "logged in" nor "logged out" is known.
type Status string

const (
	StatusUndetermined    Status = "undetermined"
	StatusUnauthenticated Status = "unauthenticated"
	StatusAuthenticated   Status = "authenticated"
)

// SessionService manages the single active session. It delegates account
// decisions to the repository, keeps its own session record as a pure
// projection of the account, and persists that record wholesale on every
// transition.
//
// All methods are safe for concurrent use; a single mutex serializes every
// operation against the two shared documents.
type SessionService struct {
	repo  accounts.Repository
	store store.Store
	log   logging.Logger

	mu      sync.Mutex
	status  Status
	session *models.Session
}

// NewSessionService constructs a SessionService over the given repository
// and document store. The status starts as StatusUndetermined until
// Restore settles it.
func NewSessionService(repo accounts.Repository, st store.Store, log logging.Logger) *SessionService {
	return &SessionService{
		repo:   repo,
		store:  st,
		log:    log,
		status: StatusUndetermined,
	}
}

// Restore loads the persisted session document, if any, and settles the
// readiness status. A found session is trusted as-is: credentials are not
// re-verified against the repository. A session whose account no longer
// resolves is kept but logged, so the condition is visible.
func (s *SessionService) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sess models.Session
	found, err := s.store.Load(ctx, SessionDocumentName, &sess)
	if err != nil {
		// Settle as unauthenticated anyway: availability over surfacing
		// storage trouble at startup.
		s.status = StatusUnauthenticated
		s.session = nil
		return fmt.Errorf("restore session: %w", err)
	}

	if !found {
		s.status = StatusUnauthenticated
		s.session = nil
		return nil
	}

	if _, err := s.repo.GetByID(ctx, sess.ID); errors.Is(err, common.ErrAccountNotFound) {
		s.log.Warn(ctx, "restored session has no matching account", "id", sess.ID, "email", sess.Email)
	}

	s.session = &sess
	s.status = StatusAuthenticated
	s.log.Info(ctx, "session restored", "email", sess.Email)
	return nil
}

// Register creates a new account and logs it in. On any failure the
// previous state is left intact and the error is propagated.
func (s *SessionService) Register(ctx context.Context, input models.AccountInput) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.repo.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	sess, err := s.activate(ctx, acc)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "account registered", "email", sess.Email)
	return sess, nil
}

// Login verifies the credentials and establishes the session.
func (s *SessionService) Login(ctx context.Context, email, secret string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.repo.VerifyCredentials(ctx, email, secret)
	if err != nil {
		return nil, err
	}
	sess, err := s.activate(ctx, acc)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "session established", "email", sess.Email)
	return sess, nil
}

// activate projects the account to a session, persists the session
// document, and transitions to authenticated. Callers hold the mutex.
func (s *SessionService) activate(ctx context.Context, acc *models.Account) (*models.Session, error) {
	sess := acc.Session()
	if err := s.store.Save(ctx, SessionDocumentName, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	s.session = sess
	s.status = StatusAuthenticated
	s.log.Debug(ctx, "session document replaced", "email", sess.Email)

	cp := *sess
	return &cp, nil
}

// UpdateProfile applies a partial update to the logged-in account and
// replaces the session with the merged result. Requires an active session.
func (s *SessionService) UpdateProfile(ctx context.Context, patch models.Patch) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateProfile(ctx, patch)
}

func (s *SessionService) updateProfile(ctx context.Context, patch models.Patch) (*models.Session, error) {
	if s.status != StatusAuthenticated || s.session == nil {
		return nil, common.ErrNotAuthenticated
	}

	acc, err := s.repo.Update(ctx, s.session.ID, patch)
	if err != nil {
		return nil, err
	}
	return s.activate(ctx, acc)
}

// UpdateProfileImage is a convenience specialization of UpdateProfile
// restricted to the profile image. Its failures are reported distinctly
// so the caller can tell an image update apart from a generic one.
func (s *SessionService) UpdateProfileImage(ctx context.Context, imageRef string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.updateProfile(ctx, models.Patch{ProfileImage: models.String(imageRef)})
	if err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", common.ErrProfileImageUpdate, err)
	}
	return sess, nil
}

// Logout clears the session unconditionally. Storage trouble while
// removing the document is logged, not returned: from the caller's view
// logout cannot fail.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, SessionDocumentName); err != nil {
		s.log.Warn(ctx, "failed to remove session document", "error", err.Error())
	}
	if s.session != nil {
		s.log.Info(ctx, "session cleared", "email", s.session.Email)
	}
	s.session = nil
	s.status = StatusUnauthenticated
}

// Current returns a copy of the active session, or nil when there is none.
func (s *SessionService) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

// Status returns the current readiness tag.
func (s *SessionService) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Determined reports whether the startup load has settled, i.e. the
// status is no longer StatusUndetermined.
func (s *SessionService) Determined() bool {
	return s.Status() != StatusUndetermined
}
