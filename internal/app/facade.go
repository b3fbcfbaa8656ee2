package app

import (
	"context"

	"github.com/learnhub/learnhub/internal/domain/model"
	"github.com/learnhub/learnhub/internal/domain/repository"
	pkgAuth "github.com/learnhub/learnhub/internal/pkg/auth"
	"github.com/learnhub/learnhub/internal/prefs"
	"github.com/learnhub/learnhub/internal/session"
	"github.com/learnhub/learnhub/internal/usecase"
)

// Facade aggregates the session manager and use cases behind the single
// surface the HTTP layer consumes.
type Facade struct {
	sessions *session.Manager
	tokens   pkgAuth.Strategy
	catalog  *usecase.CatalogUseCase
	admin    *usecase.UserAdminUseCase
	prefs    *prefs.Service
}

// NewFacade constructs the application facade.
func NewFacade(sessions *session.Manager, tokens pkgAuth.Strategy, catalog *usecase.CatalogUseCase, admin *usecase.UserAdminUseCase, preferences *prefs.Service) *Facade {
	return &Facade{sessions: sessions, tokens: tokens, catalog: catalog, admin: admin, prefs: preferences}
}

// SignUp creates an account, establishes the session and issues a token.
func (f *Facade) SignUp(ctx context.Context, name, email, password string) (*model.PublicUser, string, error) {
	user, err := f.sessions.Signup(ctx, name, email, password)
	if err != nil {
		return nil, "", err
	}
	token, err := f.tokens.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignIn verifies credentials, establishes the session and issues a token.
func (f *Facade) SignIn(ctx context.Context, email, password string) (*model.PublicUser, string, error) {
	user, err := f.sessions.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	token, err := f.tokens.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignOut ends the session.
func (f *Facade) SignOut(ctx context.Context) {
	f.sessions.Logout(ctx)
}

// RestoreSession loads the persisted session at startup.
func (f *Facade) RestoreSession(ctx context.Context) {
	f.sessions.Restore(ctx)
}

// ParseToken extracts the user id from a request token.
func (f *Facade) ParseToken(token string) (int64, error) {
	return f.tokens.ParseToken(token)
}

// CurrentUser returns the authenticated user, or nil.
func (f *Facade) CurrentUser() *model.PublicUser {
	return f.sessions.CurrentUser()
}

// HasRole evaluates the entitlement predicate for the current session.
func (f *Facade) HasRole(required model.Role) bool {
	return f.sessions.HasRole(required)
}

// IsAdmin reports whether the current session belongs to an admin.
func (f *Facade) IsAdmin() bool {
	return f.sessions.IsAdmin()
}

// Programs lists the catalog.
func (f *Facade) Programs(ctx context.Context) ([]model.Program, error) {
	return f.catalog.Programs(ctx)
}

// ProgramBySlug fetches a program by slug.
func (f *Facade) ProgramBySlug(ctx context.Context, slug string) (*model.Program, error) {
	return f.catalog.ProgramBySlug(ctx, slug)
}

// Users lists all accounts for the admin screens.
func (f *Facade) Users(ctx context.Context) ([]model.PublicUser, error) {
	return f.admin.List(ctx)
}

// UpdateUser applies a partial account mutation.
func (f *Facade) UpdateUser(ctx context.Context, id int64, upd repository.UserUpdate) (*model.PublicUser, error) {
	return f.admin.Update(ctx, id, upd)
}

// DeleteUser removes an account.
func (f *Facade) DeleteUser(ctx context.Context, id int64) error {
	return f.admin.Delete(ctx, id)
}

// Theme returns the saved display theme.
func (f *Facade) Theme(ctx context.Context) (string, error) {
	return f.prefs.Theme(ctx)
}

// SetTheme saves the display theme.
func (f *Facade) SetTheme(ctx context.Context, theme string) error {
	return f.prefs.SetTheme(ctx, theme)
}
