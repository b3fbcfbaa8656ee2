package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	domainErrors "github.com/learnhub/learnhub/internal/domain/errors"
	"github.com/learnhub/learnhub/internal/domain/model"
	"github.com/learnhub/learnhub/internal/domain/repository"
)

// AuthUseCase orchestrates credential verification and account creation
// against the user repository. Every record it returns has passed through
// the Public projection, so credentials never leave this layer.
type AuthUseCase struct {
	users repository.UserRepository
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{users: users}
}

// Verify checks the email/credential pair and returns the stripped record.
// Any mismatch, including an unknown email, reports ErrInvalidCredentials.
func (u *AuthUseCase) Verify(ctx context.Context, email, password string) (*model.PublicUser, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(usr.Password), []byte(password)) == 0 {
		return nil, domainErrors.ErrInvalidCredentials
	}

	return usr.Public(), nil
}

// Register creates a new account with the default role and returns the
// stripped record. A taken email reports ErrAlreadyExists and leaves the
// store untouched.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.PublicUser, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.Create(ctx, name, email, password)
	if err != nil {
		return nil, err
	}

	return usr.Public(), nil
}

// GetByID fetches the stripped record by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.PublicUser, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return usr.Public(), nil
}
