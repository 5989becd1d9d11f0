package service

import (
	"fmt"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	f := seed.NewFactory(3)
	posts := []models.Post{
		f.BuildPost(func(p *models.Post) {
			p.Title = "Go Concurrency Patterns"
			p.Body = "channels and goroutines"
			p.Category = models.CategoryTechnology
		}),
		f.BuildPost(func(p *models.Post) {
			p.Title = "Palette Basics"
			p.Body = "picking colors that survive dark mode"
			p.Category = models.CategoryDesign
		}),
		f.BuildPost(func(p *models.Post) {
			p.Title = "Quarterly Planning"
			p.Body = "budgets, bets and GOALS"
			p.Category = models.CategoryBusiness
		}),
	}

	t.Run("search matches title or body case-insensitively", func(t *testing.T) {
		t.Parallel()
		got := Filter(posts, "GO", models.CategoryAll)
		require.Len(t, got, 2)
		assert.Equal(t, "Go Concurrency Patterns", got[0].Title)
		assert.Equal(t, "Quarterly Planning", got[1].Title)
	})

	t.Run("category narrows, all is the wildcard", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, Filter(posts, "", models.CategoryAll), 3)
		assert.Len(t, Filter(posts, "", models.CategoryDesign), 1)
		assert.Empty(t, Filter(posts, "", models.CategoryLifestyle))
	})

	t.Run("search and category combine with AND", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, Filter(posts, "go", models.CategoryDesign))
		assert.Len(t, Filter(posts, "go", models.CategoryTechnology), 1)
	})

	t.Run("every result is a subset of the input", func(t *testing.T) {
		t.Parallel()
		for _, p := range Filter(posts, "a", models.CategoryAll) {
			assert.Contains(t, posts, p)
		}
	})
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	f := seed.NewFactory(4)
	posts := make([]models.Post, 14)
	for i := range posts {
		posts[i] = f.BuildPost()
	}

	t.Run("page size bound", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, Paginate(posts, 1, DefaultPageSize), 6)
		assert.Len(t, Paginate(posts, 3, DefaultPageSize), 2)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, Paginate(posts, 4, DefaultPageSize))
		assert.Empty(t, Paginate(posts, 99, DefaultPageSize))
	})

	t.Run("pages reconstruct the input with no gaps or overlaps", func(t *testing.T) {
		t.Parallel()
		total := TotalPages(len(posts), DefaultPageSize)
		require.Equal(t, 3, total)

		var reconstructed []models.Post
		for page := 1; page <= total; page++ {
			reconstructed = append(reconstructed, Paginate(posts, page, DefaultPageSize)...)
		}
		assert.Equal(t, posts, reconstructed)
	})
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total int
		want  int
	}{
		{0, 0},
		{1, 1},
		{6, 1},
		{7, 2},
		{12, 2},
		{13, 3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(fmt.Sprintf("%d items", tc.total), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, TotalPages(tc.total, DefaultPageSize))
		})
	}
}
