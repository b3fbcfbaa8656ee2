package test

import (
	"context"

	"github.com/learnhub/learnhub/internal/domain/model"
	"github.com/learnhub/learnhub/internal/domain/repository"
)

// AuthFacadeStub simulates session operations for HTTP layer tests.
type AuthFacadeStub struct {
	SignUpFn  func(context.Context, string, string, string) (*model.PublicUser, string, error)
	SignInFn  func(context.Context, string, string) (*model.PublicUser, string, error)
	SignOutFn func(context.Context)
	UserVal   *model.PublicUser
	HasRoleFn func(model.Role) bool
}

// SignUp returns a token for successful signup scenarios.
func (s AuthFacadeStub) SignUp(ctx context.Context, name, email, password string) (*model.PublicUser, string, error) {
	if s.SignUpFn != nil {
		return s.SignUpFn(ctx, name, email, password)
	}
	return &model.PublicUser{ID: 1, Email: email, Name: name, Role: model.RoleFree}, "token", nil
}

// SignIn returns a token for successful login scenarios.
func (s AuthFacadeStub) SignIn(ctx context.Context, email, password string) (*model.PublicUser, string, error) {
	if s.SignInFn != nil {
		return s.SignInFn(ctx, email, password)
	}
	return &model.PublicUser{ID: 1, Email: email, Role: model.RoleFree}, "token", nil
}

// SignOut records the logout when an override is present.
func (s AuthFacadeStub) SignOut(ctx context.Context) {
	if s.SignOutFn != nil {
		s.SignOutFn(ctx)
	}
}

// CurrentUser returns the configured user.
func (s AuthFacadeStub) CurrentUser() *model.PublicUser {
	return s.UserVal
}

// HasRole evaluates the override or denies by default.
func (s AuthFacadeStub) HasRole(required model.Role) bool {
	if s.HasRoleFn != nil {
		return s.HasRoleFn(required)
	}
	return false
}

// CatalogFacadeStub serves a configured catalog.
type CatalogFacadeStub struct {
	ProgramsFn      func(context.Context) ([]model.Program, error)
	ProgramBySlugFn func(context.Context, string) (*model.Program, error)
}

// Programs lists the configured catalog.
func (s CatalogFacadeStub) Programs(ctx context.Context) ([]model.Program, error) {
	if s.ProgramsFn != nil {
		return s.ProgramsFn(ctx)
	}
	return nil, nil
}

// ProgramBySlug returns the configured program.
func (s CatalogFacadeStub) ProgramBySlug(ctx context.Context, slug string) (*model.Program, error) {
	if s.ProgramBySlugFn != nil {
		return s.ProgramBySlugFn(ctx, slug)
	}
	return &model.Program{ID: 1, Slug: slug, Tier: model.RoleFree}, nil
}

// AdminFacadeStub simulates the admin user-management surface.
type AdminFacadeStub struct {
	UsersFn      func(context.Context) ([]model.PublicUser, error)
	UpdateUserFn func(context.Context, int64, repository.UserUpdate) (*model.PublicUser, error)
	DeleteUserFn func(context.Context, int64) error
}

// Users lists the configured accounts.
func (s AdminFacadeStub) Users(ctx context.Context) ([]model.PublicUser, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return nil, nil
}

// UpdateUser applies the override or echoes the id.
func (s AdminFacadeStub) UpdateUser(ctx context.Context, id int64, upd repository.UserUpdate) (*model.PublicUser, error) {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, id, upd)
	}
	return &model.PublicUser{ID: id}, nil
}

// DeleteUser applies the override or succeeds.
func (s AdminFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil
}

// PrefsFacadeStub simulates the preference surface.
type PrefsFacadeStub struct {
	ThemeFn    func(context.Context) (string, error)
	SetThemeFn func(context.Context, string) error
}

// Theme returns the configured theme.
func (s PrefsFacadeStub) Theme(ctx context.Context) (string, error) {
	if s.ThemeFn != nil {
		return s.ThemeFn(ctx)
	}
	return "", nil
}

// SetTheme applies the override or succeeds.
func (s PrefsFacadeStub) SetTheme(ctx context.Context, theme string) error {
	if s.SetThemeFn != nil {
		return s.SetThemeFn(ctx, theme)
	}
	return nil
}

// SessionGuardStub implements the middleware guard contract.
type SessionGuardStub struct {
	ParseFn  func(string) (int64, error)
	UserVal  *model.PublicUser
	AdminVal bool
}

// ParseToken delegates to the override or accepts with id 1.
func (s SessionGuardStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// CurrentUser returns the configured user.
func (s SessionGuardStub) CurrentUser() *model.PublicUser {
	return s.UserVal
}

// IsAdmin returns the configured admin flag.
func (s SessionGuardStub) IsAdmin() bool {
	return s.AdminVal
}

// PlatformFacadeStub aggregates facade stubs for router level tests.
type PlatformFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	AdminFacadeStub
	PrefsFacadeStub
	ParseFn  func(string) (int64, error)
	AdminVal bool
}

// ParseToken delegates to the override or accepts with id 1.
func (s PlatformFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// IsAdmin returns the configured admin flag.
func (s PlatformFacadeStub) IsAdmin() bool {
	return s.AdminVal
}
