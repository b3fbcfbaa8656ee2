package test

import (
	"context"

	domainErrors "github.com/learnhub/learnhub/internal/domain/errors"
	"github.com/learnhub/learnhub/internal/domain/model"
	"github.com/learnhub/learnhub/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests. Ids are assigned
// from a counter that never goes backwards.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs a stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Create registers a user unless the email is taken or the stub has an
// explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, password string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{
		ID:       s.Next,
		Email:    email,
		Password: password,
		Name:     name,
		Role:     model.RoleFree,
	}
	s.Next++
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches a user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches a user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored users.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.User, 0, len(s.ByID))
	for id := int64(1); id < s.Next; id++ {
		if user, ok := s.ByID[id]; ok {
			result = append(result, *user)
		}
	}
	return result, nil
}

// Update applies the partial mutation or returns not found.
func (s *UserRepositoryStub) Update(ctx context.Context, id int64, upd repository.UserUpdate) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Role != nil {
		user.Role = *upd.Role
	}
	if upd.IsAdmin != nil {
		user.IsAdmin = *upd.IsAdmin
	}
	return user, nil
}

// Delete removes the user or returns not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	delete(s.ByEmail, user.Email)
	return nil
}

// ProgramRepositoryStub serves a fixed catalog for tests.
type ProgramRepositoryStub struct {
	Items []model.Program
	Err   error
}

// List returns the configured catalog.
func (s *ProgramRepositoryStub) List(ctx context.Context) ([]model.Program, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// GetByID returns the matching program or not found.
func (s *ProgramRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Program, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Items {
		if p.ID == id {
			program := p
			return &program, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetBySlug returns the matching program or not found.
func (s *ProgramRepositoryStub) GetBySlug(ctx context.Context, slug string) (*model.Program, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Items {
		if p.Slug == slug {
			program := p
			return &program, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}
