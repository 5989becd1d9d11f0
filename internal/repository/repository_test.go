package repository

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPostRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty storage loads nothing", func(t *testing.T) {
		t.Parallel()
		repo := NewLocalPostRepository(storage.NewMemory())
		posts, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("save then load round trip", func(t *testing.T) {
		t.Parallel()
		repo := NewLocalPostRepository(storage.NewMemory())
		in := []models.Post{{
			ID:       1717171717000,
			Title:    "Hi There",
			Body:     "a body long enough to count",
			Category: models.CategoryDesign,
			Author:   "Al",
			UserID:   42,
			Date:     time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
			Image:    "https://example.com/a.png",
			ReadTime: 1,
		}}
		require.NoError(t, repo.Save(ctx, in))

		out, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("malformed stored data degrades to empty", func(t *testing.T) {
		t.Parallel()
		mem := storage.NewMemory()
		mem.Seed(storage.KeyPosts, "{broken")
		repo := NewLocalPostRepository(mem)

		posts, err := repo.Load(ctx)
		assert.Error(t, err)
		assert.Empty(t, posts)
	})
}

func TestLocalAuthorRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := NewLocalAuthorRepository(storage.NewMemory())
	authors, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, authors)

	in := []models.Author{{
		ID:        7,
		Name:      "Al",
		Email:     "al@x.com",
		Password:  "$2a$10$notarealhashbutshapedlikeone",
		Role:      models.RoleAuthor,
		CreatedAt: time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
	}}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLocalSessionRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("absent session means guest", func(t *testing.T) {
		t.Parallel()
		repo := NewLocalSessionRepository(storage.NewMemory())
		sess, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("save load clear", func(t *testing.T) {
		t.Parallel()
		mem := storage.NewMemory()
		repo := NewLocalSessionRepository(mem)

		in := models.Session{
			User:  models.User{ID: 999, Name: "Admin", Email: "admin@blog.com", Role: models.RoleAdmin},
			Token: "opaque-token",
		}
		require.NoError(t, repo.Save(ctx, in))

		sess, err := repo.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.Equal(t, in, *sess)

		require.NoError(t, repo.Clear(ctx))
		sess, err = repo.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, sess)

		// Both keys are gone, not just the user.
		_, ok, err := mem.Get(ctx, storage.KeyToken)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed user is an error", func(t *testing.T) {
		t.Parallel()
		mem := storage.NewMemory()
		mem.Seed(storage.KeyUser, "not json")
		repo := NewLocalSessionRepository(mem)

		sess, err := repo.Load(ctx)
		assert.Error(t, err)
		assert.Nil(t, sess)
	})
}
