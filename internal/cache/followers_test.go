package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/d60-Lab/sundaynet/internal/model"
)

func newTestCache(t *testing.T) *FollowerCache {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewFollowerCache(rdb, time.Minute)
}

func TestFollowerCacheRoundtrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_, ok := c.GetPage(ctx, KindFollowers, "u1", 1, 10)
	assert.False(t, ok)

	rows := []*model.Profile{{ID: "a", Bio: "a"}, {ID: "b", Bio: "b"}}
	c.SetPage(ctx, KindFollowers, "u1", 1, 10, rows)

	got, ok := c.GetPage(ctx, KindFollowers, "u1", 1, 10)
	assert.True(t, ok)
	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)

	// 不同页、不同 kind 互不命中
	_, ok = c.GetPage(ctx, KindFollowers, "u1", 2, 10)
	assert.False(t, ok)
	_, ok = c.GetPage(ctx, KindFollowing, "u1", 1, 10)
	assert.False(t, ok)
}

func TestFollowerCacheInvalidate(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	c.SetPage(ctx, KindFollowers, "u1", 1, 10, []*model.Profile{{ID: "a"}})
	c.SetPage(ctx, KindFollowers, "u1", 2, 10, []*model.Profile{{ID: "b"}})
	c.SetPage(ctx, KindFollowers, "u2", 1, 10, []*model.Profile{{ID: "c"}})

	c.Invalidate(ctx, KindFollowers, "u1")

	_, ok := c.GetPage(ctx, KindFollowers, "u1", 1, 10)
	assert.False(t, ok)
	_, ok = c.GetPage(ctx, KindFollowers, "u1", 2, 10)
	assert.False(t, ok)

	// 其他用户的页不受影响
	_, ok = c.GetPage(ctx, KindFollowers, "u2", 1, 10)
	assert.True(t, ok)
}
