package service

import (
	"context"
	"sort"
	"time"

	"inkwell/internal/images"
	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
	"inkwell/internal/storage"
	"inkwell/internal/validation"
)

// Drafts submitted without an authenticated user fall back to the anonymous
// identity, matching the presentation layer's guest defaults.
const (
	anonymousUserID = 1
	anonymousAuthor = "Anonymous"
)

// PostService owns the canonical post collection: the immutable seed dataset
// merged with custom posts persisted through the repository. It is not safe
// for concurrent use; callers serialize, one in-flight mutation at a time.
type PostService struct {
	repo   repository.PostRepository
	seed   []models.Post
	picker *images.Picker
	now    func() time.Time

	custom  []models.Post
	lastErr *models.AppError
}

// AddPostInput is the draft for a new post. Image is optional; an empty or
// invalid URL gets an auto-generated cover.
type AddPostInput struct {
	Title    string
	Body     string
	Category string
	Image    string
	// User is the acting identity; nil means an unauthenticated-but-permitted
	// caller and defaults to the anonymous identity.
	User *models.User
}

// UpdatePostInput is a partial update. Fields absent from Patch stay
// untouched.
type UpdatePostInput struct {
	ID    int64
	Patch models.PostDraft
	User  *models.User
}

// DeletePostInput identifies the post to remove and the acting user.
type DeletePostInput struct {
	ID   int64
	User *models.User
}

// NewPostService creates a PostService over the given repository and seed
// dataset. Call Load before first use to restore persisted custom posts.
func NewPostService(repo repository.PostRepository, seedPosts []models.Post, picker *images.Picker) *PostService {
	if picker == nil {
		picker = images.NewPicker(nil)
	}
	return &PostService{
		repo:   repo,
		seed:   seedPosts,
		picker: picker,
		now:    time.Now,
	}
}

// Load restores the custom-post list from storage. Unreadable or malformed
// data degrades to an empty list with an advisory warning; the store stays
// usable either way.
func (s *PostService) Load(ctx context.Context) {
	posts, err := s.repo.Load(ctx)
	if err != nil {
		s.degrade(err)
		s.custom = nil
		return
	}
	s.custom = posts
	s.lastErr = nil
}

// Err returns the advisory store-level error, or nil. Persistence failures
// land here instead of failing the operation that caused them.
func (s *PostService) Err() error {
	if s.lastErr == nil {
		return nil
	}
	return s.lastErr
}

// List returns the full merged collection, newest first. Custom posts shadow
// seed posts that share an id. Pure; no side effects.
func (s *PostService) List() []models.Post {
	shadowed := make(map[int64]bool, len(s.custom))
	for _, p := range s.custom {
		shadowed[p.ID] = true
	}

	merged := make([]models.Post, 0, len(s.custom)+len(s.seed))
	merged = append(merged, s.custom...)
	for _, p := range s.seed {
		if !shadowed[p.ID] {
			merged = append(merged, p)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})
	return merged
}

// Add validates the draft, resolves derived fields and prepends the new post
// to the custom list. The finalized post is returned; persistence is
// best-effort.
func (s *PostService) Add(ctx context.Context, in AddPostInput) (models.Post, error) {
	if err := validation.ValidateNewPost(in.Title, in.Body, in.Category); err != nil {
		observability.PostOperations.WithLabelValues("add", "invalid").Inc()
		return models.Post{}, err
	}

	image := in.Image
	if !images.IsValidImageURL(image) {
		image = s.picker.AutoImage(in.Category, in.Title)
	}

	author := anonymousAuthor
	userID := int64(anonymousUserID)
	if in.User != nil {
		author = in.User.Name
		userID = in.User.ID
	}

	now := s.now()
	post := models.Post{
		ID:       nextTimeID(now),
		Title:    in.Title,
		Body:     in.Body,
		Category: in.Category,
		Author:   author,
		UserID:   userID,
		Date:     now,
		Image:    image,
		ReadTime: images.EstimateReadTime(in.Body),
	}

	s.custom = append([]models.Post{post}, s.custom...)
	s.persist(ctx)
	observability.PostOperations.WithLabelValues("add", "success").Inc()
	return post, nil
}

// Update merges the provided fields over the stored post. Seed posts are
// promoted into the custom list on first edit (copy-on-write) so the change
// survives a reload; an unknown id is a silent no-op returning nil.
func (s *PostService) Update(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if err := validation.ValidatePostPatch(in.Patch); err != nil {
		observability.PostOperations.WithLabelValues("update", "invalid").Inc()
		return nil, err
	}

	idx := s.customIndex(in.ID)
	var post models.Post
	if idx >= 0 {
		post = s.custom[idx]
	} else {
		seedPost, ok := s.seedPost(in.ID)
		if !ok {
			observability.PostOperations.WithLabelValues("update", "noop").Inc()
			return nil, nil
		}
		post = seedPost
	}

	// Authorization runs before any mutation so a denied edit of a seed post
	// never leaves a promoted copy behind.
	if err := s.authorize(&post, in.User, "update"); err != nil {
		return nil, err
	}

	if idx < 0 {
		// Promote the seed post so the edit persists.
		s.custom = append([]models.Post{post}, s.custom...)
		idx = 0
	}

	if in.Patch.Title != nil {
		post.Title = *in.Patch.Title
	}
	if in.Patch.Category != nil {
		post.Category = *in.Patch.Category
	}
	if in.Patch.Body != nil {
		post.Body = *in.Patch.Body
		post.ReadTime = images.EstimateReadTime(post.Body)
	}
	if in.Patch.Image != nil {
		if images.IsValidImageURL(*in.Patch.Image) {
			post.Image = *in.Patch.Image
		} else {
			post.Image = s.picker.AutoImage(post.Category, post.Title)
		}
	}

	s.custom[idx] = post
	s.persist(ctx)
	observability.PostOperations.WithLabelValues("update", "success").Inc()
	return &post, nil
}

// Delete removes a custom post. Seed posts cannot be deleted; deleting one,
// or an unknown id, is a silent no-op.
func (s *PostService) Delete(ctx context.Context, in DeletePostInput) error {
	idx := s.customIndex(in.ID)
	if idx < 0 {
		observability.PostOperations.WithLabelValues("delete", "noop").Inc()
		return nil
	}

	if err := s.authorize(&s.custom[idx], in.User, "delete"); err != nil {
		return err
	}

	s.custom = append(s.custom[:idx], s.custom[idx+1:]...)
	s.persist(ctx)
	observability.PostOperations.WithLabelValues("delete", "success").Inc()
	return nil
}

// Filter returns the merged collection narrowed by search query and
// category. Pure.
func (s *PostService) Filter(query, category string) []models.Post {
	return Filter(s.List(), query, category)
}

// Browse runs the full query pipeline: filter, then one page of results plus
// the page count the pager needs.
func (s *PostService) Browse(q Query) Page {
	filtered := s.Filter(q.Search, q.Category)
	return Page{
		Posts:      Paginate(filtered, q.Page, q.PageSize),
		TotalPages: TotalPages(len(filtered), q.PageSize),
		Total:      len(filtered),
	}
}

// authorize enforces the ownership rule when an acting user is supplied:
// authors touch only their own posts, admins touch anything. A nil user is
// a caller the presentation layer has already gated.
func (s *PostService) authorize(post *models.Post, user *models.User, op string) error {
	if user == nil || user.IsAdmin() || post.UserID == user.ID {
		return nil
	}
	observability.PostOperations.WithLabelValues(op, "unauthorized").Inc()
	return models.NewUnauthorizedError("You can only " + op + " your own posts")
}

func (s *PostService) customIndex(id int64) int {
	for i, p := range s.custom {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *PostService) seedPost(id int64) (models.Post, bool) {
	for _, p := range s.seed {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// persist writes the custom list back to storage. Failures degrade: the
// in-memory state is already correct, so the error is absorbed as an
// advisory warning.
func (s *PostService) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.custom); err != nil {
		s.degrade(err)
		return
	}
	s.lastErr = nil
}

func (s *PostService) degrade(err error) {
	s.lastErr = models.NewPersistenceWarning(err)
	observability.PersistenceFailures.WithLabelValues(storage.KeyPosts).Inc()
}
