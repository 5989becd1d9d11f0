package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
	"inkwell/internal/storage"
	"inkwell/internal/validation"
)

// The implicit admin identity. Exactly one exists and it never appears in
// the author registry.
const (
	adminUserID = 999
	adminName   = "Admin"
)

// AuthOptions configures the session manager.
type AuthOptions struct {
	// AdminEmail and AdminPassword are the fixed admin credential pair.
	AdminEmail    string
	AdminPassword string
	// Delay is the simulated network latency on login and register. It
	// always elapses in full; there is no cancellation.
	Delay time.Duration
	// TokenSecret signs the opaque session token. The token is
	// presentational and never validated.
	TokenSecret string
}

// AuthService owns the current user identity and role. State machine:
// logged out, then login or register succeeds into LoggedIn(role), then
// logout back to logged out. The session persists across restarts through
// the session repository.
type AuthService struct {
	sessions repository.SessionRepository
	authors  repository.AuthorRepository
	opts     AuthOptions
	now      func() time.Time

	current *models.User
	lastErr *models.AppError
}

// NewAuthService creates an AuthService. Call Load to restore a persisted
// session before first use.
func NewAuthService(sessions repository.SessionRepository, authors repository.AuthorRepository, opts AuthOptions) *AuthService {
	return &AuthService{
		sessions: sessions,
		authors:  authors,
		opts:     opts,
		now:      time.Now,
	}
}

// Load restores the persisted session. Absent or unreadable session data
// means guest; read failures are absorbed as an advisory warning.
func (s *AuthService) Load(ctx context.Context) {
	sess, err := s.sessions.Load(ctx)
	if err != nil {
		s.degrade(err)
		s.current = nil
		return
	}
	if sess != nil {
		s.current = &sess.User
	}
	s.lastErr = nil
}

// Err returns the advisory persistence warning, or nil.
func (s *AuthService) Err() error {
	if s.lastErr == nil {
		return nil
	}
	return s.lastErr
}

// Login authenticates against the fixed admin pair or a registered author
// record and establishes a persisted session. It blocks for the configured
// simulated latency so callers can show pending state.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	// Every outcome, including empty fields, observes the full delay.
	s.simulateLatency()

	if email == "" || password == "" {
		observability.AuthAttempts.WithLabelValues("login", "invalid").Inc()
		return nil, models.NewInvalidCredentialsError()
	}

	user, ok := s.matchCredentials(ctx, email, password)
	if !ok {
		observability.AuthAttempts.WithLabelValues("login", "invalid").Inc()
		return nil, models.NewInvalidCredentialsError()
	}

	s.establish(ctx, user)
	observability.AuthAttempts.WithLabelValues("login", "success").Inc()
	return s.current, nil
}

// Register creates an author record in the local registry and establishes a
// session for the new author. A reused email fails with DuplicateEmail.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := validation.ValidateName(name); err != nil {
		observability.AuthAttempts.WithLabelValues("register", "invalid").Inc()
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		observability.AuthAttempts.WithLabelValues("register", "invalid").Inc()
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		observability.AuthAttempts.WithLabelValues("register", "invalid").Inc()
		return nil, models.NewValidationError(err.Error())
	}

	s.simulateLatency()

	authors, err := s.authors.Load(ctx)
	if err != nil {
		// A broken registry must not let a duplicate email through
		// silently, but it also must not brick registration: degrade and
		// treat the registry as empty.
		s.degrade(err)
		authors = nil
	}
	for _, a := range authors {
		if a.Email == email {
			observability.AuthAttempts.WithLabelValues("register", "duplicate").Inc()
			return nil, models.NewDuplicateEmailError(email)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		observability.AuthAttempts.WithLabelValues("register", "error").Inc()
		return nil, err
	}

	now := s.now()
	author := models.Author{
		ID:        nextTimeID(now),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		Role:      models.RoleAuthor,
		CreatedAt: now,
	}
	if err := s.authors.Save(ctx, append(authors, author)); err != nil {
		s.degrade(err)
	}

	s.establish(ctx, models.User{
		ID:    author.ID,
		Name:  author.Name,
		Email: author.Email,
		Role:  models.RoleAuthor,
	})
	observability.AuthAttempts.WithLabelValues("register", "success").Inc()
	return s.current, nil
}

// Logout clears the persisted session synchronously. It has no failure
// modes: a storage error degrades but the user is logged out regardless.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.sessions.Clear(ctx); err != nil {
		s.degrade(err)
	}
	s.current = nil
}

// Current returns the logged-in user, or nil for guest.
func (s *AuthService) Current() *models.User {
	return s.current
}

// IsAuthenticated reports whether a session is established.
func (s *AuthService) IsAuthenticated() bool {
	return s.current != nil
}

// IsAdmin reports whether the current user is the admin.
func (s *AuthService) IsAdmin() bool {
	return s.current.IsAdmin()
}

// IsAuthor reports whether the current user is a registered author.
func (s *AuthService) IsAuthor() bool {
	return s.current.IsAuthor()
}

// CanWrite reports whether the current user may create posts.
func (s *AuthService) CanWrite() bool {
	return s.current.CanWrite()
}

// matchCredentials resolves the credential pair to an identity: the fixed
// admin first, then the registry with a bcrypt comparison.
func (s *AuthService) matchCredentials(ctx context.Context, email, password string) (models.User, bool) {
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(s.opts.AdminEmail))
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(s.opts.AdminPassword))
	if emailMatch&passMatch == 1 {
		return models.User{
			ID:    adminUserID,
			Name:  adminName,
			Email: email,
			Role:  models.RoleAdmin,
		}, true
	}

	authors, err := s.authors.Load(ctx)
	if err != nil {
		s.degrade(err)
		return models.User{}, false
	}
	for _, a := range authors {
		if a.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
			return models.User{}, false
		}
		return models.User{
			ID:    a.ID,
			Name:  a.Name,
			Email: a.Email,
			Role:  models.RoleAuthor,
		}, true
	}
	return models.User{}, false
}

// establish makes user the current identity and persists the session.
// Persistence failures degrade; the in-memory session stands.
func (s *AuthService) establish(ctx context.Context, user models.User) {
	token := s.generateToken(user)
	if err := s.sessions.Save(ctx, models.Session{User: user, Token: token}); err != nil {
		s.degrade(err)
	} else {
		s.lastErr = nil
	}
	s.current = &user
}

// generateToken mints the opaque session token: a signed JWT purely for
// presentational parity with a real backend. Nothing ever validates it.
func (s *AuthService) generateToken(user models.User) string {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"role":    user.Role,
		"jti":     uuid.NewString(),
		"iat":     s.now().Unix(),
		"exp":     s.now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.opts.TokenSecret))
	if err != nil {
		// Unreachable with HS256 and a string secret; fall back to the jti
		// so the session still has an opaque token.
		return "inkwell_" + uuid.NewString()
	}
	return signed
}

func (s *AuthService) simulateLatency() {
	if s.opts.Delay > 0 {
		time.Sleep(s.opts.Delay)
	}
}

func (s *AuthService) degrade(err error) {
	s.lastErr = models.NewPersistenceWarning(err)
	observability.PersistenceFailures.WithLabelValues(storage.KeyUser).Inc()
}
