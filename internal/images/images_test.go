package images

import (
	"math/rand"
	"strings"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsValidImageURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"jpg extension", "https://example.com/photo.jpg", true},
		{"uppercase extension", "https://example.com/photo.PNG", true},
		{"webp extension", "https://cdn.site.io/a/b/c.webp", true},
		{"unsplash host without extension", "https://images.unsplash.com/photo-1518770660439?w=800", true},
		{"imgur host", "https://i.imgur.com/abc123", true},
		{"plain page url", "https://example.com/article", false},
		{"not a url", "not a url", false},
		{"missing scheme", "example.com/photo.jpg", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsValidImageURL(tc.url))
		})
	}
}

func TestPicker_AutoImage(t *testing.T) {
	t.Parallel()

	t.Run("picks from the category set", func(t *testing.T) {
		t.Parallel()
		p := NewPicker(rand.New(rand.NewSource(1)))
		got := p.AutoImage(models.CategoryDesign, "Some Title")
		assert.Contains(t, CategorySet(models.CategoryDesign), got)
	})

	t.Run("unknown category falls back to Technology", func(t *testing.T) {
		t.Parallel()
		p := NewPicker(rand.New(rand.NewSource(1)))
		got := p.AutoImage("Gardening", "")
		assert.Contains(t, CategorySet(models.CategoryTechnology), got)
	})

	t.Run("fixed source pins the selection", func(t *testing.T) {
		t.Parallel()
		a := NewPicker(rand.New(rand.NewSource(42))).AutoImage(models.CategoryBusiness, "")
		b := NewPicker(rand.New(rand.NewSource(42))).AutoImage(models.CategoryBusiness, "")
		assert.Equal(t, a, b)
	})

	t.Run("every auto image is itself a valid image url", func(t *testing.T) {
		t.Parallel()
		for _, category := range models.Categories {
			for _, u := range CategorySet(category) {
				assert.True(t, IsValidImageURL(u), u)
			}
		}
	})
}

func TestEstimateReadTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"empty body", "", 1},
		{"whitespace only", "   \n\t ", 1},
		{"fifteen words", strings.TrimSpace(strings.Repeat("word ", 15)), 1},
		{"exactly 200 words", strings.Repeat("word ", 200), 1},
		{"201 words rounds up", strings.Repeat("word ", 201), 2},
		{"450 words", strings.Repeat("word ", 450), 3},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, EstimateReadTime(tc.body))
		})
	}
}
