package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bloghub/bloghub/internal/domain/contract"
	"github.com/bloghub/bloghub/internal/domain/entity"
	"github.com/bloghub/bloghub/internal/dto"
	usecasecontract "github.com/bloghub/bloghub/internal/usecase/contract"
)

// topLikedLimit bounds the ranking returned by GetStats.
const topLikedLimit = 5

// BlogUsecase is the moderation engine. It owns the pending → approved /
// rejected state machine and the authorization rules for likes and
// comments. All mutations run as single atomic store updates; there is no
// read-modify-write on the like set or comment sequence.
type BlogUsecase struct {
	blogRepo      contract.IBlogRepository
	userRepo      contract.IUserRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	blogCache     contract.IBlogCache
}

// NewBlogUsecase creates and returns a new BlogUsecase instance.
func NewBlogUsecase(blogRepo contract.IBlogRepository, userRepo contract.IUserRepository, uuidGenerator contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *BlogUsecase {
	return &BlogUsecase{
		blogRepo:      blogRepo,
		userRepo:      userRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

// check that BlogUsecase implements IBlogUseCase
var _ usecasecontract.IBlogUseCase = (*BlogUsecase)(nil)

// SetBlogCache wires an optional read cache for the approved list.
func (uc *BlogUsecase) SetBlogCache(cache contract.IBlogCache) {
	uc.blogCache = cache
}

// CreateBlog submits a new post. Any authenticated caller may create; the
// post always enters the pending state regardless of role.
func (uc *BlogUsecase) CreateBlog(ctx context.Context, caller entity.Caller, title, content string) (*dto.BlogResponse, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entity.ErrValidation)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", entity.ErrValidation)
	}

	blog := &entity.Blog{
		ID:        uc.uuidGenerator.NewUUID(),
		Title:     title,
		Content:   content,
		AuthorID:  caller.UserID,
		Status:    entity.BlogStatusPending,
		Likes:     []string{},
		Comments:  []entity.Comment{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.blogRepo.CreateBlog(ctx, blog); err != nil {
		uc.logger.Errorf("failed to create blog: %v", err)
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	return uc.resolveBlog(ctx, blog)
}

// ListApproved returns the approved blogs visible to every authenticated
// caller, newest first.
func (uc *BlogUsecase) ListApproved(ctx context.Context, caller entity.Caller) ([]*dto.BlogResponse, error) {
	if uc.blogCache != nil {
		if blogs, ok, err := uc.blogCache.GetApprovedList(ctx); err != nil {
			uc.logger.Warnf("approved-list cache read failed: %v", err)
		} else if ok {
			return uc.resolveBlogs(ctx, blogs)
		}
	}

	blogs, err := uc.blogRepo.GetBlogsByStatus(ctx, entity.BlogStatusApproved, "")
	if err != nil {
		uc.logger.Errorf("failed to list approved blogs: %v", err)
		return nil, fmt.Errorf("failed to list approved blogs: %w", err)
	}

	if uc.blogCache != nil {
		if err := uc.blogCache.SetApprovedList(ctx, blogs); err != nil {
			uc.logger.Warnf("approved-list cache write failed: %v", err)
		}
	}

	return uc.resolveBlogs(ctx, blogs)
}

// ListPending applies the role-dependent visibility rule in the store
// query itself: admins get every pending post, everyone else only their
// own. Other authors' pending content never reaches a non-admin caller.
func (uc *BlogUsecase) ListPending(ctx context.Context, caller entity.Caller) ([]*dto.BlogResponse, error) {
	authorFilter := ""
	if !caller.IsAdmin() {
		authorFilter = caller.UserID
	}

	blogs, err := uc.blogRepo.GetBlogsByStatus(ctx, entity.BlogStatusPending, authorFilter)
	if err != nil {
		uc.logger.Errorf("failed to list pending blogs: %v", err)
		return nil, fmt.Errorf("failed to list pending blogs: %w", err)
	}

	return uc.resolveBlogs(ctx, blogs)
}

// GetBlog fetches any blog by id for any authenticated caller. There is
// no status or ownership filter here: a pending or rejected post is
// readable by anyone who knows its id. Only the pending list is filtered.
func (uc *BlogUsecase) GetBlog(ctx context.Context, caller entity.Caller, blogID string) (*dto.BlogResponse, error) {
	blog, err := uc.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return uc.resolveBlog(ctx, blog)
}

// SetStatus reassigns the moderation state. Only admins may transition a
// post, and a previously decided post can be re-decided; the most recent
// admin decision is authoritative.
func (uc *BlogUsecase) SetStatus(ctx context.Context, caller entity.Caller, blogID string, status entity.BlogStatus) (*dto.BlogResponse, error) {
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins can change blog status", entity.ErrForbidden)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: invalid status %q", entity.ErrValidation, status)
	}

	if err := uc.blogRepo.UpdateStatus(ctx, blogID, status); err != nil {
		return nil, err
	}
	uc.invalidateApprovedList(ctx)

	blog, err := uc.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return uc.resolveBlog(ctx, blog)
}

// ToggleLike flips the caller's membership in the blog's like set using
// atomic add-if-absent / remove-if-present updates. Two concurrent toggles
// on the same set cannot drop each other's writes; a pair of calls by the
// same user restores the original membership. Self-likes are allowed.
func (uc *BlogUsecase) ToggleLike(ctx context.Context, caller entity.Caller, blogID string) (*dto.BlogResponse, error) {
	if _, err := uc.blogRepo.GetBlogByID(ctx, blogID); err != nil {
		return nil, err
	}

	added, err := uc.blogRepo.AddLike(ctx, blogID, caller.UserID)
	if err != nil {
		uc.logger.Errorf("failed to add like: %v", err)
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}
	if !added {
		// Already a member: this call is an unlike. If a concurrent toggle
		// removed the membership first, the remove is a no-op and the net
		// state is still "not liked", which is what this caller asked for.
		if _, err := uc.blogRepo.RemoveLike(ctx, blogID, caller.UserID); err != nil {
			uc.logger.Errorf("failed to remove like: %v", err)
			return nil, fmt.Errorf("failed to toggle like: %w", err)
		}
	}
	uc.invalidateApprovedList(ctx)

	blog, err := uc.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return uc.resolveBlog(ctx, blog)
}

// AddComment appends a comment to any blog regardless of its status or
// authorship. The commenter's display name is captured at creation time so
// later username changes do not rewrite historical bylines.
func (uc *BlogUsecase) AddComment(ctx context.Context, caller entity.Caller, blogID, content string) (*dto.BlogResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment content is required", entity.ErrValidation)
	}
	if utf8.RuneCountInString(content) > entity.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment content exceeds %d characters", entity.ErrValidation, entity.MaxCommentLength)
	}

	if _, err := uc.blogRepo.GetBlogByID(ctx, blogID); err != nil {
		return nil, err
	}

	author, err := uc.userRepo.GetUserByID(ctx, caller.UserID)
	if err != nil {
		uc.logger.Errorf("failed to load comment author %s: %v", caller.UserID, err)
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	comment := &entity.Comment{
		ID:         uc.uuidGenerator.NewUUID(),
		AuthorID:   caller.UserID,
		AuthorName: author.Username,
		Content:    content,
		CreatedAt:  time.Now(),
	}

	if err := uc.blogRepo.AppendComment(ctx, blogID, comment); err != nil {
		uc.logger.Errorf("failed to append comment: %v", err)
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	uc.invalidateApprovedList(ctx)

	blog, err := uc.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return uc.resolveBlog(ctx, blog)
}

// DeleteComment removes a comment when the caller is its author or an
// admin. A missing blog or comment is not found, which is distinct from
// the forbidden case; the blog's author holds no special rights here.
func (uc *BlogUsecase) DeleteComment(ctx context.Context, caller entity.Caller, blogID, commentID string) (*dto.BlogResponse, error) {
	blog, err := uc.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	comment := blog.CommentByID(commentID)
	if comment == nil {
		return nil, fmt.Errorf("%w: comment %s", entity.ErrNotFound, commentID)
	}

	if comment.AuthorID != caller.UserID && !caller.IsAdmin() {
		return nil, fmt.Errorf("%w: not authorized to delete this comment", entity.ErrForbidden)
	}

	if err := uc.blogRepo.RemoveComment(ctx, blogID, commentID); err != nil {
		uc.logger.Errorf("failed to remove comment: %v", err)
		return nil, fmt.Errorf("failed to delete comment: %w", err)
	}
	uc.invalidateApprovedList(ctx)

	blog, err = uc.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return uc.resolveBlog(ctx, blog)
}

// GetStats derives the dashboard aggregates from the same data the read
// operations return: counts per status plus a fold over the approved list
// for like/comment totals and the top-liked ranking. Nothing is stored.
func (uc *BlogUsecase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	counts, err := uc.blogRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorf("failed to count blogs by status: %v", err)
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	approved, err := uc.blogRepo.GetBlogsByStatus(ctx, entity.BlogStatusApproved, "")
	if err != nil {
		uc.logger.Errorf("failed to list approved blogs for stats: %v", err)
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	stats := &dto.StatsResponse{
		PendingCount:  counts[entity.BlogStatusPending],
		ApprovedCount: counts[entity.BlogStatusApproved],
		RejectedCount: counts[entity.BlogStatusRejected],
	}
	stats.TotalBlogs = stats.PendingCount + stats.ApprovedCount + stats.RejectedCount

	ranking := make([]dto.BlogRankingItem, 0, len(approved))
	for _, blog := range approved {
		stats.TotalLikes += blog.LikeCount()
		stats.TotalComments += len(blog.Comments)
		ranking = append(ranking, dto.BlogRankingItem{
			ID:        blog.ID,
			Title:     blog.Title,
			LikeCount: blog.LikeCount(),
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].LikeCount > ranking[j].LikeCount
	})
	if len(ranking) > topLikedLimit {
		ranking = ranking[:topLikedLimit]
	}
	stats.TopLiked = ranking

	return stats, nil
}

// resolveBlog expands a single blog's reference fields to display
// identities.
func (uc *BlogUsecase) resolveBlog(ctx context.Context, blog *entity.Blog) (*dto.BlogResponse, error) {
	resolved, err := uc.resolveBlogs(ctx, []*entity.Blog{blog})
	if err != nil {
		return nil, err
	}
	return resolved[0], nil
}

// resolveBlogs batches the user lookups for a list of blogs: one query for
// every author, liker and comment author referenced anywhere in the list.
func (uc *BlogUsecase) resolveBlogs(ctx context.Context, blogs []*entity.Blog) ([]*dto.BlogResponse, error) {
	idSet := make(map[string]struct{})
	for _, blog := range blogs {
		idSet[blog.AuthorID] = struct{}{}
		for _, userID := range blog.Likes {
			idSet[userID] = struct{}{}
		}
		for i := range blog.Comments {
			idSet[blog.Comments[i].AuthorID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := uc.userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorf("failed to resolve user references: %v", err)
		return nil, fmt.Errorf("failed to resolve user references: %w", err)
	}

	responses := make([]*dto.BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		responses = append(responses, dto.ToBlogResponse(blog, users))
	}
	return responses, nil
}

func (uc *BlogUsecase) invalidateApprovedList(ctx context.Context) {
	if uc.blogCache == nil {
		return
	}
	if err := uc.blogCache.InvalidateApprovedList(ctx); err != nil {
		uc.logger.Warnf("approved-list cache invalidation failed: %v", err)
	}
}
