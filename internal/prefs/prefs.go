// Package prefs stores display preferences in their own named slot,
// independent of the session.
package prefs

import (
	"context"

	domainErrors "github.com/learnhub/learnhub/internal/domain/errors"
	"github.com/learnhub/learnhub/internal/storage/slots"
)

const themeSlot = "theme"

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Service reads and writes the theme preference.
type Service struct {
	slots *slots.Store
}

// NewService constructs the preference service.
func NewService(store *slots.Store) *Service {
	return &Service{slots: store}
}

// Theme returns the saved theme, or "" when none was saved.
func (s *Service) Theme(ctx context.Context) (string, error) {
	value, err := s.slots.Get(ctx, themeSlot)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// SetTheme saves the theme. Only "dark" and "light" are accepted.
func (s *Service) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return domainErrors.ErrUnsupportedTheme
	}
	return s.slots.Set(ctx, themeSlot, []byte(theme))
}
