package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bloghub/bloghub/internal/domain/contract"
	"github.com/bloghub/bloghub/internal/domain/entity"
)

const approvedListKey = "blogs:list:approved"

// BlogCacheStore caches the approved-blogs list in Redis. Mutations that
// can change the list content invalidate the key; a miss falls through to
// the store.
type BlogCacheStore struct {
	rdb     *redis.Client
	listTTL time.Duration
}

var _ contract.IBlogCache = (*BlogCacheStore)(nil)

func NewBlogCacheStore(rdb *redis.Client) *BlogCacheStore {
	return &BlogCacheStore{
		rdb:     rdb,
		listTTL: 5 * time.Minute,
	}
}

func (c *BlogCacheStore) GetApprovedList(ctx context.Context) ([]*entity.Blog, bool, error) {
	b, err := c.rdb.Get(ctx, approvedListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var blogs []*entity.Blog
	if err := json.Unmarshal(b, &blogs); err != nil {
		// Treat a corrupt entry as a miss; it will be rewritten.
		return nil, false, nil
	}
	return blogs, true, nil
}

func (c *BlogCacheStore) SetApprovedList(ctx context.Context, blogs []*entity.Blog) error {
	data, err := json.Marshal(blogs)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, approvedListKey, data, c.listTTL).Err()
}

func (c *BlogCacheStore) InvalidateApprovedList(ctx context.Context) error {
	return c.rdb.Del(ctx, approvedListKey).Err()
}
