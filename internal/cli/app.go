package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/popxauth/internal/config"
	"github.com/dmitrijs2005/popxauth/internal/filex"
	"github.com/dmitrijs2005/popxauth/internal/logging"
	"github.com/dmitrijs2005/popxauth/internal/models"
	"github.com/dmitrijs2005/popxauth/internal/repositories/accounts"
	"github.com/dmitrijs2005/popxauth/internal/services"
	"github.com/dmitrijs2005/popxauth/internal/store"
)

// sessionManager is the slice of the session service the CLI consumes.
// The CLI holds no decision logic: it prompts, delegates, and prints.
type sessionManager interface {
	Restore(ctx context.Context) error
	Register(ctx context.Context, input models.AccountInput) (*models.Session, error)
	Login(ctx context.Context, email, secret string) (*models.Session, error)
	UpdateProfile(ctx context.Context, patch models.Patch) (*models.Session, error)
	UpdateProfileImage(ctx context.Context, imageRef string) (*models.Session, error)
	Logout(ctx context.Context)
	Current() *models.Session
	Determined() bool
}

type App struct {
	config   *config.Config
	sessions sessionManager
	log      logging.Logger
	reader   *bufio.Reader
}

// NewApp wires the document store, the account repository, and the session
// manager under the CLI.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	st := store.NewFileStore(dir, log.With("component", "store"))
	repo := accounts.NewDocumentRepository(st)
	sm := services.NewSessionService(repo, st, log.With("component", "sessions"))

	return &App{
		config:   c,
		sessions: sm,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session and enters the REPL. The restore is
// completed before the first prompt is shown, so the loop never renders an
// undetermined authentication state.
func (a *App) Run(ctx context.Context) {
	if err := a.sessions.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed, starting logged out", "error", err.Error())
	}
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current() != nil
}
