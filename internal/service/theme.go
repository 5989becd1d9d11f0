package service

import (
	"context"

	"inkwell/internal/storage"
)

// Theme values persisted under blog_theme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeService holds the display theme and persists it across reloads.
type ThemeService struct {
	store storage.Storage
	theme string
}

// NewThemeService creates a ThemeService defaulting to light.
func NewThemeService(store storage.Storage) *ThemeService {
	return &ThemeService{store: store, theme: ThemeLight}
}

// Load restores the persisted theme. Anything unreadable or unknown falls
// back to light.
func (s *ThemeService) Load(ctx context.Context) {
	v, ok, err := s.store.Get(ctx, storage.KeyTheme)
	if err != nil || !ok {
		s.theme = ThemeLight
		return
	}
	if v == ThemeDark {
		s.theme = ThemeDark
	} else {
		s.theme = ThemeLight
	}
}

// Theme returns the current theme.
func (s *ThemeService) Theme() string {
	return s.theme
}

// Toggle flips between light and dark and persists the result best-effort.
func (s *ThemeService) Toggle(ctx context.Context) string {
	if s.theme == ThemeLight {
		s.theme = ThemeDark
	} else {
		s.theme = ThemeLight
	}
	// Theme is cosmetic; a failed write just means the old theme comes back
	// next launch.
	_ = s.store.Set(ctx, storage.KeyTheme, s.theme)
	return s.theme
}
