package seed

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"inkwell/internal/images"
	"inkwell/internal/models"
)

// Factory builds realistic domain entities for tests and demos. It does not
// persist anything; callers feed the results to the store under test.
type Factory struct {
	rng    *rand.Rand
	nextID int64
}

// NewFactory creates a Factory with the given seed for reproducible output.
func NewFactory(seedVal int64) *Factory {
	gofakeit.Seed(seedVal)
	return &Factory{
		rng:    rand.New(rand.NewSource(seedVal)),
		nextID: 100000,
	}
}

// BuildPost constructs a plausible custom post. Overrides mutate the post
// after the defaults are filled in.
func (f *Factory) BuildPost(overrides ...func(*models.Post)) models.Post {
	f.nextID++
	category := models.Categories[f.rng.Intn(len(models.Categories))]
	body := gofakeit.Paragraph(2, 4, 12, " ")

	daysBack := f.rng.Intn(90)
	post := models.Post{
		ID:       f.nextID,
		Title:    gofakeit.Sentence(5),
		Body:     body,
		Category: category,
		Author:   gofakeit.Name(),
		UserID:   int64(f.rng.Intn(5) + 1),
		Date:     time.Now().Add(-time.Duration(daysBack) * 24 * time.Hour),
		Image:    images.NewPicker(f.rng).AutoImage(category, ""),
		ReadTime: images.EstimateReadTime(body),
	}
	for _, fn := range overrides {
		fn(&post)
	}
	return post
}

// BuildAuthor constructs a registered author record. The password field is
// left empty; callers that need a credential hash it themselves.
func (f *Factory) BuildAuthor(overrides ...func(*models.Author)) models.Author {
	f.nextID++
	author := models.Author{
		ID:        f.nextID,
		Name:      gofakeit.Name(),
		Email:     gofakeit.Email(),
		Role:      models.RoleAuthor,
		CreatedAt: time.Now(),
	}
	for _, fn := range overrides {
		fn(&author)
	}
	return author
}
