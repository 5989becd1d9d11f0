package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/storage"
)

// AuthorRepository stores the registered-author registry, separate from the
// live session.
type AuthorRepository interface {
	Load(ctx context.Context) ([]models.Author, error)
	Save(ctx context.Context, authors []models.Author) error
}

// LocalAuthorRepository keeps author records as a JSON array under
// blog_authors.
type LocalAuthorRepository struct {
	store  storage.Storage
	logger *observability.StoreLogger
}

// NewLocalAuthorRepository returns an AuthorRepository over the given storage.
func NewLocalAuthorRepository(store storage.Storage) *LocalAuthorRepository {
	return &LocalAuthorRepository{
		store:  store,
		logger: observability.NewStoreLogger(storage.KeyAuthors),
	}
}

// Load reads the registry. Missing key means nobody registered yet.
func (r *LocalAuthorRepository) Load(ctx context.Context) ([]models.Author, error) {
	defer observability.TrackStorageOp("load", storage.KeyAuthors)()

	raw, ok, err := r.store.Get(ctx, storage.KeyAuthors)
	if err != nil {
		r.logger.LogError(ctx, err, "load")
		return nil, fmt.Errorf("read authors: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var authors []models.Author
	if err := json.Unmarshal([]byte(raw), &authors); err != nil {
		r.logger.LogError(ctx, err, "load")
		return nil, fmt.Errorf("decode authors: %w", err)
	}
	return authors, nil
}

// Save writes the full registry back to storage.
func (r *LocalAuthorRepository) Save(ctx context.Context, authors []models.Author) error {
	defer observability.TrackStorageOp("save", storage.KeyAuthors)()

	raw, err := json.Marshal(authors)
	if err != nil {
		r.logger.LogError(ctx, err, "save")
		return fmt.Errorf("encode authors: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyAuthors, string(raw)); err != nil {
		r.logger.LogError(ctx, err, "save")
		return fmt.Errorf("write authors: %w", err)
	}
	r.logger.LogOp(ctx, "save", map[string]interface{}{"count": len(authors)})
	return nil
}
