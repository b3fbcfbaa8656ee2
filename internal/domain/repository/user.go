package repository

import (
	"context"

	"github.com/learnhub/learnhub/internal/domain/model"
)

// UserUpdate describes a partial mutation of a user record. Nil fields
// are left untouched.
type UserUpdate struct {
	Name    *string
	Role    *model.Role
	IsAdmin *bool
}

// UserRepository describes persistence operations for user accounts.
// Records returned here still carry the credential; callers are expected
// to project through model.User.Public before the record leaves the
// application core.
type UserRepository interface {
	Create(ctx context.Context, name, email, password string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id int64, upd UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}
