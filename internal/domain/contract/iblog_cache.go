package contract

import (
	"context"

	"github.com/bloghub/bloghub/internal/domain/entity"
)

// IBlogCache is a read cache for the approved-blogs list. Any mutation that
// can change the list (create is excluded — new posts start pending) must
// invalidate it.
type IBlogCache interface {
	GetApprovedList(ctx context.Context) ([]*entity.Blog, bool, error)
	SetApprovedList(ctx context.Context, blogs []*entity.Blog) error
	InvalidateApprovedList(ctx context.Context) error
}
