// Package repository persists domain records to the local key-value storage.
// Every repository is a thin JSON codec over one storage key; the interfaces
// exist so services can be tested against stubs and so a remote backing
// could be substituted without touching callers.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/storage"
)

// PostRepository stores the custom-post list. The seed dataset never passes
// through here.
type PostRepository interface {
	Load(ctx context.Context) ([]models.Post, error)
	Save(ctx context.Context, posts []models.Post) error
}

// LocalPostRepository keeps custom posts as a JSON array under blog_posts.
type LocalPostRepository struct {
	store  storage.Storage
	logger *observability.StoreLogger
}

// NewLocalPostRepository returns a PostRepository over the given storage.
func NewLocalPostRepository(store storage.Storage) *LocalPostRepository {
	return &LocalPostRepository{
		store:  store,
		logger: observability.NewStoreLogger(storage.KeyPosts),
	}
}

// Load reads the persisted custom posts. A missing key is an empty list;
// unreadable or malformed data returns an empty list alongside the error so
// the store can degrade instead of failing.
func (r *LocalPostRepository) Load(ctx context.Context) ([]models.Post, error) {
	defer observability.TrackStorageOp("load", storage.KeyPosts)()

	raw, ok, err := r.store.Get(ctx, storage.KeyPosts)
	if err != nil {
		r.logger.LogError(ctx, err, "load")
		return nil, fmt.Errorf("read custom posts: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var posts []models.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		r.logger.LogError(ctx, err, "load")
		return nil, fmt.Errorf("decode custom posts: %w", err)
	}
	return posts, nil
}

// Save writes the full custom-post list back to storage.
func (r *LocalPostRepository) Save(ctx context.Context, posts []models.Post) error {
	defer observability.TrackStorageOp("save", storage.KeyPosts)()

	raw, err := json.Marshal(posts)
	if err != nil {
		r.logger.LogError(ctx, err, "save")
		return fmt.Errorf("encode custom posts: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyPosts, string(raw)); err != nil {
		r.logger.LogError(ctx, err, "save")
		return fmt.Errorf("write custom posts: %w", err)
	}
	r.logger.LogOp(ctx, "save", map[string]interface{}{"count": len(posts)})
	return nil
}
