// Package storage provides the local key-value persistence layer. All
// application state lives under a small fixed set of string keys; values are
// JSON-encoded where structured. Backends are interchangeable and failures
// are advisory: callers keep working in memory when a backend degrades.
package storage

import "context"

// Persisted storage keys.
const (
	KeyUser    = "blog_user"
	KeyToken   = "blog_token"
	KeyAuthors = "blog_authors"
	KeyPosts   = "blog_posts"
	KeyTheme   = "blog_theme"
)

// Storage is the capability interface every backend implements. Get reports
// absence via ok=false rather than an error; an absent session key means
// guest, an absent posts key means no custom posts yet.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
