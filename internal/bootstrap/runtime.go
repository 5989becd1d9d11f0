// Package bootstrap wires configuration, storage and the state managers
// into one explicit application context. The presentation layer receives an
// *App at startup instead of reaching for globals.
package bootstrap

import (
	"context"
	"fmt"

	"inkwell/internal/config"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
	"inkwell/internal/seed"
	"inkwell/internal/service"
	"inkwell/internal/storage"
)

// App is the fully wired application context.
type App struct {
	Config *config.Config
	Store  storage.Storage
	Posts  *service.PostService
	Auth   *service.AuthService
	Theme  *service.ThemeService
}

// InitRuntime opens the configured storage backend, builds the state
// managers over it and restores persisted state. Load failures degrade to
// empty state; only an unusable backend is fatal.
func InitRuntime(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}

	seedPosts, err := seed.Posts()
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("load bundled posts: %w", err)
	}

	app := &App{
		Config: cfg,
		Store:  store,
		Posts:  service.NewPostService(repository.NewLocalPostRepository(store), seedPosts, nil),
		Auth: service.NewAuthService(
			repository.NewLocalSessionRepository(store),
			repository.NewLocalAuthorRepository(store),
			service.AuthOptions{
				AdminEmail:    cfg.AdminEmail,
				AdminPassword: cfg.AdminPassword,
				Delay:         cfg.AuthDelay(),
				TokenSecret:   cfg.TokenSecret,
			},
		),
		Theme: service.NewThemeService(store),
	}

	app.Posts.Load(ctx)
	app.Auth.Load(ctx)
	app.Theme.Load(ctx)

	if err := app.Posts.Err(); err != nil {
		observability.GlobalLogger.Warn("post store loaded degraded", "error", err.Error())
	}
	if err := app.Auth.Err(); err != nil {
		observability.GlobalLogger.Warn("session loaded degraded", "error", err.Error())
	}

	return app, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	return a.Store.Close()
}

func openStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		store, err := storage.OpenFile(cfg.StoragePath)
		if err != nil {
			// A malformed file still yields a usable empty store.
			observability.GlobalLogger.Warn("file storage degraded", "error", err.Error())
		}
		return store, nil
	case config.BackendSQLite:
		return storage.OpenSQLite(cfg.StoragePath, observability.GlobalLogger.Logger)
	case config.BackendRedis:
		return storage.OpenRedis(cfg.RedisURL, cfg.RedisPrefix)
	case config.BackendMemory:
		return storage.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
