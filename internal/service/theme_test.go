package service

import (
	"context"
	"testing"

	"inkwell/internal/storage"

	"github.com/stretchr/testify/assert"
)

func TestThemeService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("defaults to light", func(t *testing.T) {
		t.Parallel()
		svc := NewThemeService(storage.NewMemory())
		svc.Load(ctx)
		assert.Equal(t, ThemeLight, svc.Theme())
	})

	t.Run("toggle flips and persists", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemory()
		svc := NewThemeService(store)
		svc.Load(ctx)

		assert.Equal(t, ThemeDark, svc.Toggle(ctx))

		reloaded := NewThemeService(store)
		reloaded.Load(ctx)
		assert.Equal(t, ThemeDark, reloaded.Theme())

		assert.Equal(t, ThemeLight, reloaded.Toggle(ctx))
	})

	t.Run("garbage in storage falls back to light", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemory()
		store.Seed(storage.KeyTheme, "sepia")
		svc := NewThemeService(store)
		svc.Load(ctx)
		assert.Equal(t, ThemeLight, svc.Theme())
	})
}
