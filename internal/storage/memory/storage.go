package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/learnhub/learnhub/internal/domain/errors"
	"github.com/learnhub/learnhub/internal/domain/model"
	"github.com/learnhub/learnhub/internal/domain/repository"
)

// Storage is an in-memory repository facade. It backs deployments that
// run without a database: records live in slices guarded by a mutex, and
// an optional per-operation latency stands in for a real storage round
// trip. Identifiers are assigned from a counter that never decreases, so
// an id is not reused even after the highest record is deleted.
type Storage struct {
	mu       sync.RWMutex
	users    []*model.User
	programs []*model.Program

	nextUserID int64
	latency    time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

type userRepository struct {
	storage *Storage
}

type programRepository struct {
	storage *Storage
}

// New creates an empty store. Latency, when positive, is applied to every
// operation before the collection is touched.
func New(latency time.Duration, logger *slog.Logger) *Storage {
	return &Storage{
		nextUserID: 1,
		latency:    latency,
		logger:     logger,
		now:        time.Now,
	}
}

// Seed loads fixture records. Ids present in the fixtures advance the
// assignment counter so later creations stay monotonic.
func (s *Storage) Seed(users []model.User, programs []model.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range users {
		u := users[i]
		s.users = append(s.users, &u)
		if u.ID >= s.nextUserID {
			s.nextUserID = u.ID + 1
		}
	}
	for i := range programs {
		p := programs[i]
		s.programs = append(s.programs, &p)
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Programs() repository.ProgramRepository {
	return &programRepository{storage: s}
}

// wait simulates the backing-store round trip while honoring cancellation.
func (s *Storage) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.latency):
		return nil
	}
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, email, password string) (*model.User, error) {
	if err := r.storage.wait(ctx); err != nil {
		return nil, err
	}

	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	for _, u := range r.storage.users {
		if u.Email == email {
			return nil, domainErrors.ErrAlreadyExists
		}
	}

	now := r.storage.now()
	user := &model.User{
		ID:        r.storage.nextUserID,
		Email:     email,
		Password:  password,
		Name:      name,
		Role:      model.RoleFree,
		IsAdmin:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.storage.nextUserID++
	r.storage.users = append(r.storage.users, user)

	clone := *user
	return &clone, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if err := r.storage.wait(ctx); err != nil {
		return nil, err
	}

	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	for _, u := range r.storage.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if err := r.storage.wait(ctx); err != nil {
		return nil, err
	}

	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	for _, u := range r.storage.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	if err := r.storage.wait(ctx); err != nil {
		return nil, err
	}

	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	result := make([]model.User, 0, len(r.storage.users))
	for _, u := range r.storage.users {
		result = append(result, *u)
	}
	return result, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, upd repository.UserUpdate) (*model.User, error) {
	if err := r.storage.wait(ctx); err != nil {
		return nil, err
	}

	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	for _, u := range r.storage.users {
		if u.ID != id {
			continue
		}
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Role != nil {
			u.Role = *upd.Role
		}
		if upd.IsAdmin != nil {
			u.IsAdmin = *upd.IsAdmin
		}
		u.UpdatedAt = r.storage.now()
		clone := *u
		return &clone, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	if err := r.storage.wait(ctx); err != nil {
		return err
	}

	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	for i, u := range r.storage.users {
		if u.ID == id {
			r.storage.users = append(r.storage.users[:i], r.storage.users[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// --- ProgramRepository implementation ---

func (r *programRepository) List(ctx context.Context) ([]model.Program, error) {
	if err := r.storage.wait(ctx); err != nil {
		return nil, err
	}

	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	result := make([]model.Program, 0, len(r.storage.programs))
	for _, p := range r.storage.programs {
		result = append(result, *p)
	}
	return result, nil
}

func (r *programRepository) GetByID(ctx context.Context, id int64) (*model.Program, error) {
	if err := r.storage.wait(ctx); err != nil {
		return nil, err
	}

	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	for _, p := range r.storage.programs {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *programRepository) GetBySlug(ctx context.Context, slug string) (*model.Program, error) {
	if err := r.storage.wait(ctx); err != nil {
		return nil, err
	}

	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	for _, p := range r.storage.programs {
		if p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}
