// Package session owns the current-session state of the application: the
// transition between anonymous and authenticated, its durable
// persistence, and the role-entitlement predicate every gated surface
// consults.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/learnhub/learnhub/internal/domain/model"
)

// Authenticator is the credential-store surface the manager delegates to.
type Authenticator interface {
	Verify(ctx context.Context, email, password string) (*model.PublicUser, error)
	Register(ctx context.Context, name, email, password string) (*model.PublicUser, error)
}

// Manager holds the single current session. Without a session the state
// is anonymous; a successful login or signup makes it authenticated and
// persists the stripped user payload to durable storage, where Restore
// picks it up on the next start.
type Manager struct {
	auth   Authenticator
	store  Store
	logger *slog.Logger

	mu      sync.RWMutex
	current *model.PublicUser
	lastErr error
}

// NewManager constructs a Manager. The state is anonymous until Restore
// or a successful login/signup.
func NewManager(auth Authenticator, store Store, logger *slog.Logger) *Manager {
	return &Manager{auth: auth, store: store, logger: logger}
}

// Restore loads a previously persisted session. An absent, unreadable, or
// malformed payload leaves the state anonymous; none of those surface as
// errors, so startup stays robust to storage corruption. Callers must run
// Restore before trusting any role check.
func (m *Manager) Restore(ctx context.Context) {
	payload, err := m.store.Load(ctx)
	if err != nil {
		m.logger.Warn("session restore failed", slog.String("error", err.Error()))
		return
	}
	if len(payload) == 0 {
		return
	}

	var user model.PublicUser
	if err := json.Unmarshal(payload, &user); err != nil || user.ID <= 0 || user.Email == "" {
		m.logger.Warn("discarding malformed session payload")
		return
	}

	m.mu.Lock()
	m.current = &user
	m.mu.Unlock()
}

// Login verifies the credentials and transitions to authenticated. The
// retained error is cleared before the attempt; on failure the new error
// is retained and the state is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (*model.PublicUser, error) {
	m.setErr(nil)

	user, err := m.auth.Verify(ctx, email, password)
	if err != nil {
		m.setErr(err)
		return nil, err
	}

	m.establish(ctx, user)
	return user, nil
}

// Signup creates an account and transitions to authenticated, identically
// to Login on success.
func (m *Manager) Signup(ctx context.Context, name, email, password string) (*model.PublicUser, error) {
	m.setErr(nil)

	user, err := m.auth.Register(ctx, name, email, password)
	if err != nil {
		m.setErr(err)
		return nil, err
	}

	m.establish(ctx, user)
	return user, nil
}

// establish records the authenticated user and persists the payload.
// Persistence is best effort: the in-memory transition stands even when
// the durable write fails.
func (m *Manager) establish(ctx context.Context, user *model.PublicUser) {
	m.mu.Lock()
	m.current = user
	m.mu.Unlock()

	payload, err := json.Marshal(user)
	if err == nil {
		err = m.store.Save(ctx, payload)
	}
	if err != nil {
		m.logger.Warn("session not persisted", slog.String("error", err.Error()))
	}
}

// Logout returns to anonymous and deletes the persisted payload. It is
// idempotent and always succeeds.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		m.logger.Warn("persisted session not cleared", slog.String("error", err.Error()))
	}
}

// HasRole is the access predicate. No session satisfies no requirement,
// not even "free"; an admin satisfies every requirement, recognized or
// not; otherwise the role lattice decides.
func (m *Manager) HasRole(required model.Role) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return false
	}
	if m.current.IsAdmin {
		return true
	}
	return m.current.Role.Satisfies(required)
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (m *Manager) CurrentUser() *model.PublicUser {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil
	}
	clone := *m.current
	return &clone
}

// IsAuthenticated reports whether a session exists.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}

// IsAdmin reports the admin flag of the current user, false when anonymous.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil && m.current.IsAdmin
}

// Err returns the error retained from the most recent failed attempt. It
// is cleared when the next attempt starts.
func (m *Manager) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

func (m *Manager) setErr(err error) {
	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()
}
