package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/sundaynet/internal/model"
)

// FollowerCache caches follower/followee listing pages in Redis. Relationship
// writes invalidate the affected user's pages. The feed itself is never
// cached here: its window boundary moves with the clock.
type FollowerCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewFollowerCache(rdb *redis.Client, ttl time.Duration) *FollowerCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &FollowerCache{rdb: rdb, ttl: ttl}
}

func pageKey(kind, userID string, page, size int) string {
	return fmt.Sprintf("%s:%s:%d:%d", kind, userID, page, size)
}

func setKey(kind, userID string) string {
	return fmt.Sprintf("%s:keys:%s", kind, userID)
}

// GetPage returns the cached page, or (nil, false) on miss.
func (c *FollowerCache) GetPage(ctx context.Context, kind, userID string, page, size int) ([]*model.Profile, bool) {
	data, err := c.rdb.Get(ctx, pageKey(kind, userID, page, size)).Bytes()
	if err != nil {
		return nil, false
	}
	var out []*model.Profile
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	return out, true
}

// SetPage stores a page and records its key so Invalidate can drop it.
func (c *FollowerCache) SetPage(ctx context.Context, kind, userID string, page, size int, rows []*model.Profile) {
	payload, err := json.Marshal(rows)
	if err != nil {
		return
	}
	key := pageKey(kind, userID, page, size)
	pipe := c.rdb.Pipeline()
	pipe.Set(ctx, key, payload, c.ttl)
	pipe.SAdd(ctx, setKey(kind, userID), key)
	pipe.Expire(ctx, setKey(kind, userID), c.ttl)
	_, _ = pipe.Exec(ctx)
}

// Invalidate drops every cached page for the user.
func (c *FollowerCache) Invalidate(ctx context.Context, kind, userID string) {
	sk := setKey(kind, userID)
	keys, err := c.rdb.SMembers(ctx, sk).Result()
	if err != nil {
		return
	}
	keys = append(keys, sk)
	_ = c.rdb.Del(ctx, keys...).Err()
}

// Cache key kinds.
const (
	KindFollowers = "followers"
	KindFollowing = "following"
)
