package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/sundaynet/internal/model"
	"github.com/d60-Lab/sundaynet/internal/repository"
)

var (
	openClock   = fixedClock(time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC))  // 周日，开放
	closedClock = fixedClock(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)) // 周三，关闭
)

func newPolicy(t *testing.T, db *gorm.DB, clock Clock) *AccessPolicy {
	t.Helper()
	return NewAccessPolicy(repository.NewFollowRepository(db), NewSundayGate(clock))
}

func follow(t *testing.T, db *gorm.DB, from, to *model.Profile) {
	t.Helper()
	created, err := repository.NewFollowRepository(db).Create(context.Background(), from.ID, to.ID)
	require.NoError(t, err)
	require.True(t, created)
}

func TestPolicyPostRules(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	author := seedProfile(t, db, "author", false)
	follower := seedProfile(t, db, "follower", false)
	stranger := seedProfile(t, db, "stranger", false)
	follow(t, db, follower, author)

	post := &model.Post{ID: "p1", AuthorID: author.ID, Content: "hello"}
	policy := newPolicy(t, db, openClock)

	t.Run("read", func(t *testing.T) {
		assert.NoError(t, policy.Authorize(ctx, author, ResourcePost, ActionRead, post))
		assert.NoError(t, policy.Authorize(ctx, follower, ResourcePost, ActionRead, post))
		assert.ErrorIs(t, policy.Authorize(ctx, stranger, ResourcePost, ActionRead, post), ErrForbidden)
		// 反向关注不算：author 没关注 follower
		reverse := &model.Post{ID: "p2", AuthorID: follower.ID}
		assert.ErrorIs(t, policy.Authorize(ctx, author, ResourcePost, ActionRead, reverse), ErrForbidden)
	})

	t.Run("create follows the gate only", func(t *testing.T) {
		assert.NoError(t, policy.Authorize(ctx, stranger, ResourcePost, ActionCreate, nil))

		closed := newPolicy(t, db, closedClock)
		assert.ErrorIs(t, closed.Authorize(ctx, author, ResourcePost, ActionCreate, nil), ErrNotSunday)
		assert.ErrorIs(t, closed.Authorize(ctx, stranger, ResourcePost, ActionCreate, nil), ErrNotSunday)
	})

	t.Run("delete only by author", func(t *testing.T) {
		assert.NoError(t, policy.Authorize(ctx, author, ResourcePost, ActionDelete, post))
		assert.ErrorIs(t, policy.Authorize(ctx, follower, ResourcePost, ActionDelete, post), ErrForbidden)
	})
}

func TestPolicyProfileRules(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := seedProfile(t, db, "owner", false)
	follower := seedProfile(t, db, "follower", false)
	stranger := seedProfile(t, db, "stranger", false)
	follow(t, db, follower, owner)

	policy := newPolicy(t, db, openClock)

	assert.NoError(t, policy.Authorize(ctx, owner, ResourceProfile, ActionRead, owner))
	assert.NoError(t, policy.Authorize(ctx, follower, ResourceProfile, ActionRead, owner))
	assert.ErrorIs(t, policy.Authorize(ctx, stranger, ResourceProfile, ActionRead, owner), ErrForbidden)

	assert.NoError(t, policy.Authorize(ctx, owner, ResourceProfile, ActionUpdate, owner))
	assert.ErrorIs(t, policy.Authorize(ctx, follower, ResourceProfile, ActionUpdate, owner), ErrForbidden)
	assert.NoError(t, policy.Authorize(ctx, owner, ResourceProfile, ActionDelete, owner))
	assert.ErrorIs(t, policy.Authorize(ctx, follower, ResourceProfile, ActionDelete, owner), ErrForbidden)
}

func TestPolicyEdgeRules(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	a := seedProfile(t, db, "alice", false)
	b := seedProfile(t, db, "bob", false)
	c := seedProfile(t, db, "carol", false)
	policy := newPolicy(t, db, openClock)

	edge := &model.Follow{FollowerID: a.ID, FolloweeID: b.ID}
	for _, act := range []Action{ActionRead, ActionDelete} {
		assert.NoError(t, policy.Authorize(ctx, a, ResourceFollow, act, edge))
		assert.NoError(t, policy.Authorize(ctx, b, ResourceFollow, act, edge))
		assert.ErrorIs(t, policy.Authorize(ctx, c, ResourceFollow, act, edge), ErrForbidden)
	}

	req := &model.FollowRequest{FollowerID: a.ID, FolloweeID: b.ID}
	for _, act := range []Action{ActionRead, ActionDelete} {
		assert.NoError(t, policy.Authorize(ctx, a, ResourceFollowRequest, act, req))
		assert.NoError(t, policy.Authorize(ctx, b, ResourceFollowRequest, act, req))
		assert.ErrorIs(t, policy.Authorize(ctx, c, ResourceFollowRequest, act, req), ErrForbidden)
	}

	t.Run("accept only by followee", func(t *testing.T) {
		assert.NoError(t, policy.Authorize(ctx, b, ResourceFollowRequest, ActionAccept, req))
		assert.ErrorIs(t, policy.Authorize(ctx, a, ResourceFollowRequest, ActionAccept, req), ErrForbidden)
		assert.ErrorIs(t, policy.Authorize(ctx, c, ResourceFollowRequest, ActionAccept, req), ErrForbidden)
	})

	t.Run("create only as oneself", func(t *testing.T) {
		assert.NoError(t, policy.Authorize(ctx, a, ResourceFollowRequest, ActionCreate, req))
		// 冒充别人发请求
		assert.ErrorIs(t, policy.Authorize(ctx, b, ResourceFollowRequest, ActionCreate, req), ErrForbidden)
	})

	t.Run("inbox list only by owner", func(t *testing.T) {
		assert.NoError(t, policy.Authorize(ctx, b, ResourceFollowRequest, ActionList, b))
		assert.ErrorIs(t, policy.Authorize(ctx, a, ResourceFollowRequest, ActionList, b), ErrForbidden)
	})
}

func TestPolicyDeniesUnauthenticatedAndUnknown(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	a := seedProfile(t, db, "alice", false)
	policy := newPolicy(t, db, openClock)

	post := &model.Post{ID: "p1", AuthorID: a.ID}
	assert.ErrorIs(t, policy.Authorize(ctx, nil, ResourcePost, ActionRead, post), ErrNotAuthenticated)
	assert.ErrorIs(t, policy.Authorize(ctx, nil, ResourcePost, ActionCreate, nil), ErrNotAuthenticated)

	// 表里没有的组合直接拒绝
	assert.ErrorIs(t, policy.Authorize(ctx, a, ResourceFollow, ActionCreate, nil), ErrForbidden)
	assert.ErrorIs(t, policy.Authorize(ctx, a, ResourceProfile, ActionAccept, a), ErrForbidden)
}
