package seed

import (
	"testing"

	"inkwell/internal/images"
	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosts(t *testing.T) {
	t.Parallel()

	posts, err := Posts()
	require.NoError(t, err)
	require.NotEmpty(t, posts)

	seen := make(map[int64]bool, len(posts))
	for _, p := range posts {
		assert.False(t, seen[p.ID], "duplicate seed id %d", p.ID)
		seen[p.ID] = true

		assert.GreaterOrEqual(t, len(p.Title), 3)
		assert.GreaterOrEqual(t, len(p.Body), 10)
		assert.True(t, models.ValidCategory(p.Category), "category %q", p.Category)
		assert.NotEmpty(t, p.Author)
		assert.NotZero(t, p.UserID)
		assert.False(t, p.Date.IsZero())
		assert.NotEmpty(t, p.Image)
		assert.Equal(t, images.EstimateReadTime(p.Body), p.ReadTime)
	}
}

func TestPosts_ReturnsFreshCopies(t *testing.T) {
	t.Parallel()

	first, err := Posts()
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := Posts()
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Title)
}

func TestFactory_BuildPost(t *testing.T) {
	t.Parallel()

	f := NewFactory(7)
	a := f.BuildPost()
	b := f.BuildPost(func(p *models.Post) { p.Category = models.CategoryDesign })

	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, models.ValidCategory(a.Category))
	assert.Equal(t, models.CategoryDesign, b.Category)
	assert.Equal(t, images.EstimateReadTime(a.Body), a.ReadTime)
}
