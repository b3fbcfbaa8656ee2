package handlers

import (
	"context"

	"github.com/learnhub/learnhub/internal/domain/model"
	"github.com/learnhub/learnhub/internal/domain/repository"
)

// AuthFacade describes the session capabilities required by handlers.
type AuthFacade interface {
	SignUp(ctx context.Context, name, email, password string) (*model.PublicUser, string, error)
	SignIn(ctx context.Context, email, password string) (*model.PublicUser, string, error)
	SignOut(ctx context.Context)
	CurrentUser() *model.PublicUser
	HasRole(required model.Role) bool
}

// CatalogFacade exposes the program catalog.
type CatalogFacade interface {
	Programs(ctx context.Context) ([]model.Program, error)
	ProgramBySlug(ctx context.Context, slug string) (*model.Program, error)
}

// AdminFacade provides account management for admins.
type AdminFacade interface {
	Users(ctx context.Context) ([]model.PublicUser, error)
	UpdateUser(ctx context.Context, id int64, upd repository.UserUpdate) (*model.PublicUser, error)
	DeleteUser(ctx context.Context, id int64) error
}

// PrefsFacade reads and writes display preferences.
type PrefsFacade interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

// PlatformFacade aggregates the full set of operations used across handlers.
type PlatformFacade interface {
	AuthFacade
	CatalogFacade
	AdminFacade
	PrefsFacade
}
