package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bloghub/bloghub/internal/domain/entity"
)

// In-memory doubles for the repository and service contracts. The blog
// store mirrors the real store's update semantics: add-if-absent and
// remove-if-present are single guarded mutations under one lock.

type fakeBlogRepo struct {
	mu    sync.Mutex
	blogs map[string]*entity.Blog

	failAll bool
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: make(map[string]*entity.Blog)}
}

func (r *fakeBlogRepo) CreateBlog(ctx context.Context, blog *entity.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return fmt.Errorf("store down")
	}
	clone := *blog
	r.blogs[blog.ID] = &clone
	return nil
}

func (r *fakeBlogRepo) GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return nil, fmt.Errorf("store down")
	}
	blog, ok := r.blogs[blogID]
	if !ok {
		return nil, fmt.Errorf("%w: blog %s", entity.ErrNotFound, blogID)
	}
	clone := *blog
	clone.Likes = append([]string(nil), blog.Likes...)
	clone.Comments = append([]entity.Comment(nil), blog.Comments...)
	return &clone, nil
}

func (r *fakeBlogRepo) GetBlogsByStatus(ctx context.Context, status entity.BlogStatus, authorID string) ([]*entity.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return nil, fmt.Errorf("store down")
	}
	var out []*entity.Blog
	for _, blog := range r.blogs {
		if blog.Status != status {
			continue
		}
		if authorID != "" && blog.AuthorID != authorID {
			continue
		}
		clone := *blog
		clone.Likes = append([]string(nil), blog.Likes...)
		clone.Comments = append([]entity.Comment(nil), blog.Comments...)
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeBlogRepo) UpdateStatus(ctx context.Context, blogID string, status entity.BlogStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	blog, ok := r.blogs[blogID]
	if !ok {
		return fmt.Errorf("%w: blog %s", entity.ErrNotFound, blogID)
	}
	blog.Status = status
	return nil
}

func (r *fakeBlogRepo) AddLike(ctx context.Context, blogID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	blog, ok := r.blogs[blogID]
	if !ok {
		return false, fmt.Errorf("%w: blog %s", entity.ErrNotFound, blogID)
	}
	for _, id := range blog.Likes {
		if id == userID {
			return false, nil
		}
	}
	blog.Likes = append(blog.Likes, userID)
	return true, nil
}

func (r *fakeBlogRepo) RemoveLike(ctx context.Context, blogID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	blog, ok := r.blogs[blogID]
	if !ok {
		return false, fmt.Errorf("%w: blog %s", entity.ErrNotFound, blogID)
	}
	for i, id := range blog.Likes {
		if id == userID {
			blog.Likes = append(blog.Likes[:i], blog.Likes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBlogRepo) AppendComment(ctx context.Context, blogID string, comment *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	blog, ok := r.blogs[blogID]
	if !ok {
		return fmt.Errorf("%w: blog %s", entity.ErrNotFound, blogID)
	}
	blog.Comments = append(blog.Comments, *comment)
	return nil
}

func (r *fakeBlogRepo) RemoveComment(ctx context.Context, blogID, commentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	blog, ok := r.blogs[blogID]
	if !ok {
		return fmt.Errorf("%w: blog %s", entity.ErrNotFound, blogID)
	}
	for i := range blog.Comments {
		if blog.Comments[i].ID == commentID {
			blog.Comments = append(blog.Comments[:i], blog.Comments[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: comment %s", entity.ErrNotFound, commentID)
}

func (r *fakeBlogRepo) CountByStatus(ctx context.Context) (map[entity.BlogStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[entity.BlogStatus]int64)
	for _, blog := range r.blogs {
		counts[blog.Status]++
	}
	return counts, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) add(user *entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return fmt.Errorf("%w: user", entity.ErrDuplicate)
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, id)
	}
	return user, nil
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, username)
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, email)
}

func (r *fakeUserRepo) GetUsersByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]*entity.User, len(ids))
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			out[id] = user
		}
	}
	return out, nil
}

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...interface{}) {}
func (noopLogger) Infof(format string, args ...interface{})  {}
func (noopLogger) Warnf(format string, args ...interface{})  {}
func (noopLogger) Errorf(format string, args ...interface{}) {}
func (noopLogger) Fatalf(format string, args ...interface{}) {}

type seqUUIDGen struct {
	mu sync.Mutex
	n  int
}

func (g *seqUUIDGen) NewUUID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("uuid-%d", g.n)
}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if "hashed:"+password != hashedPassword {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

type fakeJWTService struct{}

func (fakeJWTService) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	return "token-" + userID, nil
}

func (fakeJWTService) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	return nil, fmt.Errorf("not implemented")
}

type fakeValidator struct{}

func (fakeValidator) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return fmt.Errorf("invalid email")
	}
	return nil
}

func (fakeValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	return nil
}

// countingBlogCache records invalidations so tests can assert the cache
// hooks fire on mutation.
type countingBlogCache struct {
	mu            sync.Mutex
	stored        []*entity.Blog
	hasValue      bool
	invalidations int
}

func (c *countingBlogCache) GetApprovedList(ctx context.Context) ([]*entity.Blog, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasValue {
		return nil, false, nil
	}
	return c.stored, true, nil
}

func (c *countingBlogCache) SetApprovedList(ctx context.Context, blogs []*entity.Blog) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stored = blogs
	c.hasValue = true
	return nil
}

func (c *countingBlogCache) InvalidateApprovedList(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stored = nil
	c.hasValue = false
	c.invalidations++
	return nil
}
