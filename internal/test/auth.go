package test

import (
	"context"

	"github.com/learnhub/learnhub/internal/domain/model"
	pkgAuth "github.com/learnhub/learnhub/internal/pkg/auth"
)

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(int64) (string, error)
	ParseFn func(string) (int64, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID int64) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// AuthenticatorStub simulates the credential store for session tests.
type AuthenticatorStub struct {
	VerifyFn   func(context.Context, string, string) (*model.PublicUser, error)
	RegisterFn func(context.Context, string, string, string) (*model.PublicUser, error)
}

// Verify delegates to the override or succeeds with a fixed user.
func (s AuthenticatorStub) Verify(ctx context.Context, email, password string) (*model.PublicUser, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, email, password)
	}
	return &model.PublicUser{ID: 1, Email: email, Role: model.RoleFree}, nil
}

// Register delegates to the override or succeeds with a fixed user.
func (s AuthenticatorStub) Register(ctx context.Context, name, email, password string) (*model.PublicUser, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.PublicUser{ID: 1, Email: email, Name: name, Role: model.RoleFree}, nil
}

var _ pkgAuth.Strategy = StrategyStub{}
