package contract

import (
	"context"

	"github.com/bloghub/bloghub/internal/domain/entity"
)

type IBlogRepository interface {
	CreateBlog(ctx context.Context, blog *entity.Blog) error
	GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error)
	// GetBlogsByStatus lists blogs in a given moderation state, newest first.
	// A non-empty authorID narrows the result to that author's posts; this is
	// how the pending list is filtered server-side for non-admin callers.
	GetBlogsByStatus(ctx context.Context, status entity.BlogStatus, authorID string) ([]*entity.Blog, error)
	// UpdateStatus overwrites the moderation state. Last write wins; there is
	// no read-modify-write dependency on the previous state.
	UpdateStatus(ctx context.Context, blogID string, status entity.BlogStatus) error

	// AddLike adds userID to the like set only if absent. Returns false when
	// the user was already a member. The membership check and the insert are
	// a single atomic update.
	AddLike(ctx context.Context, blogID, userID string) (bool, error)
	// RemoveLike removes userID from the like set only if present. Returns
	// false when the user was not a member.
	RemoveLike(ctx context.Context, blogID, userID string) (bool, error)

	// AppendComment pushes a comment onto the blog's comment sequence as a
	// single atomic update, preserving insertion order.
	AppendComment(ctx context.Context, blogID string, comment *entity.Comment) error
	// RemoveComment pulls the comment with the given id from the blog.
	RemoveComment(ctx context.Context, blogID, commentID string) error

	// CountByStatus returns the number of blogs per moderation state.
	CountByStatus(ctx context.Context) (map[entity.BlogStatus]int64, error)
}
