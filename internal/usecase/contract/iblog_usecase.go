package contract

import (
	"context"

	"github.com/bloghub/bloghub/internal/domain/entity"
	"github.com/bloghub/bloghub/internal/dto"
)

// IBlogUseCase is the moderation engine: the blog lifecycle state machine
// plus the authorization rules for likes and comments. Every operation
// takes the authenticated caller so role and ownership checks happen
// server-side.
type IBlogUseCase interface {
	CreateBlog(ctx context.Context, caller entity.Caller, title, content string) (*dto.BlogResponse, error)
	// ListApproved returns approved blogs, visible to any authenticated caller.
	ListApproved(ctx context.Context, caller entity.Caller) ([]*dto.BlogResponse, error)
	// ListPending returns all pending blogs for admins and only the caller's
	// own pending blogs otherwise. The filter is applied in the store query;
	// other authors' pending content never crosses the wire.
	ListPending(ctx context.Context, caller entity.Caller) ([]*dto.BlogResponse, error)
	// GetBlog fetches a single blog by id with no status or ownership
	// filter. A non-admin holding another author's pending blog id can
	// read it; only the pending list is filtered.
	GetBlog(ctx context.Context, caller entity.Caller, blogID string) (*dto.BlogResponse, error)
	// SetStatus reassigns the moderation state. Admin only. Re-approving or
	// re-rejecting an already decided post is allowed; the most recent
	// decision wins.
	SetStatus(ctx context.Context, caller entity.Caller, blogID string, status entity.BlogStatus) (*dto.BlogResponse, error)
	// ToggleLike flips the caller's membership in the blog's like set.
	ToggleLike(ctx context.Context, caller entity.Caller, blogID string) (*dto.BlogResponse, error)
	AddComment(ctx context.Context, caller entity.Caller, blogID, content string) (*dto.BlogResponse, error)
	// DeleteComment removes a comment when the caller is its author or an
	// admin. The blog's author gets no special rights over other people's
	// comments.
	DeleteComment(ctx context.Context, caller entity.Caller, blogID, commentID string) (*dto.BlogResponse, error)
	// GetStats computes the dashboard aggregates as a derived view.
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}
