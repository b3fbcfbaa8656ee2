package usecase

import (
	"context"

	domainErrors "github.com/learnhub/learnhub/internal/domain/errors"
	"github.com/learnhub/learnhub/internal/domain/model"
	"github.com/learnhub/learnhub/internal/domain/repository"
)

// UserAdminUseCase backs the admin user-management screens. All records
// it returns are stripped of credentials.
type UserAdminUseCase struct {
	users repository.UserRepository
}

// NewUserAdminUseCase constructs UserAdminUseCase.
func NewUserAdminUseCase(users repository.UserRepository) *UserAdminUseCase {
	return &UserAdminUseCase{users: users}
}

// List returns all accounts.
func (u *UserAdminUseCase) List(ctx context.Context) ([]model.PublicUser, error) {
	records, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]model.PublicUser, 0, len(records))
	for i := range records {
		result = append(result, *records[i].Public())
	}
	return result, nil
}

// Update applies a partial mutation to an account. An unknown role value
// is rejected before the store is touched.
func (u *UserAdminUseCase) Update(ctx context.Context, id int64, upd repository.UserUpdate) (*model.PublicUser, error) {
	if upd.Role != nil && !upd.Role.Valid() {
		return nil, domainErrors.ErrInvalidRole
	}
	usr, err := u.users.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	return usr.Public(), nil
}

// Delete removes an account.
func (u *UserAdminUseCase) Delete(ctx context.Context, id int64) error {
	return u.users.Delete(ctx, id)
}
