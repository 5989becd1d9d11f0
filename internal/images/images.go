// Package images resolves cover images for posts and estimates read times.
package images

import (
	"math/rand"
	"net/url"
	"strings"
	"time"

	"inkwell/internal/models"
)

// Curated cover images per category, sized for the dashboard cards.
var categorySets = map[string][]string{
	models.CategoryTechnology: {
		"https://images.unsplash.com/photo-1518770660439-4636190af475?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1488590528505-98d2b5aba04b?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1550751827-4bd374c3f58b?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?w=800&h=500&fit=crop",
	},
	models.CategoryDesign: {
		"https://images.unsplash.com/photo-1561070791-2526d30994b5?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1558655146-9f40138edfeb?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1626785774573-4b799315345d?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1609921212029-bb5a28e60960?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1558655146-d09347e92766?w=800&h=500&fit=crop",
	},
	models.CategoryBusiness: {
		"https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1507679799987-c73779587ccf?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1553877522-43269d4ea984?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1542744173-8e7e53415bb0?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&h=500&fit=crop",
	},
	models.CategoryLifestyle: {
		"https://images.unsplash.com/photo-1490645935967-10de6ba17061?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1445384763658-0400939829cd?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1511632765486-a01980e01a18?w=800&h=500&fit=crop",
		"https://images.unsplash.com/photo-1484480974693-6ca0a78fb36b?w=800&h=500&fit=crop",
	},
}

const fallbackImage = "https://images.unsplash.com/photo-1499750310107-5fef28a66643?w=800&h=500&fit=crop"

// Hosts whose URLs are accepted as images even without a file extension.
var imageHosts = []string{
	"unsplash.com",
	"pexels.com",
	"pixabay.com",
	"imgur.com",
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}

// IsValidImageURL reports whether u is usable as a post cover image: it must
// parse as an absolute URL and either carry an image file extension or come
// from a known image host.
func IsValidImageURL(u string) bool {
	if u == "" {
		return false
	}
	parsed, err := url.Parse(u)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return false
	}

	lower := strings.ToLower(parsed.Path)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}

	host := strings.ToLower(parsed.Hostname())
	for _, known := range imageHosts {
		if host == known || strings.HasSuffix(host, "."+known) {
			return true
		}
	}
	return false
}

// FallbackImage returns the generic cover used when an image fails to load.
func FallbackImage() string {
	return fallbackImage
}

// Picker selects auto-generated cover images. The random source is
// injectable so tests can pin the selection; selection is otherwise not
// deterministic across calls.
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a Picker. A nil rng gets a time-seeded source.
func NewPicker(rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Picker{rng: rng}
}

// AutoImage picks a cover image for the category. Unrecognized categories
// fall back to the Technology set. The title is accepted for future
// relevance-based selection and currently ignored.
func (p *Picker) AutoImage(category, _ string) string {
	set, ok := categorySets[category]
	if !ok {
		set = categorySets[models.CategoryTechnology]
	}
	return set[p.rng.Intn(len(set))]
}

// CategorySet returns the curated image set for the category, with the
// Technology set as fallback. Exposed for tests and gallery previews.
func CategorySet(category string) []string {
	if set, ok := categorySets[category]; ok {
		return set
	}
	return categorySets[models.CategoryTechnology]
}
