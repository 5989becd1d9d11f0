package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/storage"
)

// SessionRepository stores the current session: user under blog_user, token
// under blog_token. Absence of a stored session means guest.
type SessionRepository interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error
}

// LocalSessionRepository persists the session to the local storage keys.
type LocalSessionRepository struct {
	store  storage.Storage
	logger *observability.StoreLogger
}

// NewLocalSessionRepository returns a SessionRepository over the given
// storage.
func NewLocalSessionRepository(store storage.Storage) *LocalSessionRepository {
	return &LocalSessionRepository{
		store:  store,
		logger: observability.NewStoreLogger(storage.KeyUser),
	}
}

// Load reads the persisted session, or nil when logged out. Malformed user
// data is treated as logged out and reported.
func (r *LocalSessionRepository) Load(ctx context.Context) (*models.Session, error) {
	defer observability.TrackStorageOp("load", storage.KeyUser)()

	rawUser, ok, err := r.store.Get(ctx, storage.KeyUser)
	if err != nil {
		r.logger.LogError(ctx, err, "load")
		return nil, fmt.Errorf("read session user: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		r.logger.LogError(ctx, err, "load")
		return nil, fmt.Errorf("decode session user: %w", err)
	}

	// The token is presentational; a missing one does not invalidate the
	// session.
	token, _, err := r.store.Get(ctx, storage.KeyToken)
	if err != nil {
		r.logger.LogError(ctx, err, "load")
	}

	return &models.Session{User: user, Token: token}, nil
}

// Save persists the session.
func (r *LocalSessionRepository) Save(ctx context.Context, session models.Session) error {
	defer observability.TrackStorageOp("save", storage.KeyUser)()

	rawUser, err := json.Marshal(session.User)
	if err != nil {
		r.logger.LogError(ctx, err, "save")
		return fmt.Errorf("encode session user: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyToken, session.Token); err != nil {
		r.logger.LogError(ctx, err, "save")
		return fmt.Errorf("write session token: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyUser, string(rawUser)); err != nil {
		r.logger.LogError(ctx, err, "save")
		return fmt.Errorf("write session user: %w", err)
	}
	r.logger.LogOp(ctx, "save", map[string]interface{}{"user_id": session.User.ID})
	return nil
}

// Clear removes the persisted session. Clearing an absent session is a
// no-op.
func (r *LocalSessionRepository) Clear(ctx context.Context) error {
	defer observability.TrackStorageOp("clear", storage.KeyUser)()

	if err := r.store.Delete(ctx, storage.KeyToken); err != nil {
		r.logger.LogError(ctx, err, "clear")
		return fmt.Errorf("clear session token: %w", err)
	}
	if err := r.store.Delete(ctx, storage.KeyUser); err != nil {
		r.logger.LogError(ctx, err, "clear")
		return fmt.Errorf("clear session user: %w", err)
	}
	r.logger.LogOp(ctx, "clear", nil)
	return nil
}
