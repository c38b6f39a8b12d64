package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/sundaynet/internal/model"
	"github.com/d60-Lab/sundaynet/internal/repository"
)

func TestProfileGetAndUpdate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := seedProfile(t, db, "owner", false)
	stranger := seedProfile(t, db, "stranger", false)
	svc := NewProfileService(db, repository.NewProfileRepository(db), newPolicy(t, db, openClock))

	_, err := svc.Get(ctx, stranger, owner.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Get(ctx, owner, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.Bio, got.Bio)

	updated, err := svc.Update(ctx, owner, owner.ID, "new bio", true)
	require.NoError(t, err)
	assert.Equal(t, "new bio", updated.Bio)
	assert.True(t, updated.Private)

	_, err = svc.Update(ctx, stranger, owner.ID, "hijacked", false)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get(ctx, owner, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	victim := seedProfile(t, db, "victim", false)
	other := seedProfile(t, db, "other", false)
	third := seedProfile(t, db, "third", true)

	followRepo := repository.NewFollowRepository(db)
	requestRepo := repository.NewFollowRequestRepository(db)
	postRepo := repository.NewPostRepository(db)

	// victim 两个方向的边、两个方向的请求、自己的帖子
	mustCreate := func(created bool, err error) {
		t.Helper()
		require.NoError(t, err)
		require.True(t, created)
	}
	mustCreate(followRepo.Create(ctx, victim.ID, other.ID))
	mustCreate(followRepo.Create(ctx, other.ID, victim.ID))
	mustCreate(requestRepo.Create(ctx, victim.ID, third.ID))
	mustCreate(requestRepo.Create(ctx, third.ID, victim.ID))
	_, err := postRepo.Create(ctx, victim.ID, "bye", time.Now())
	require.NoError(t, err)
	_, err = postRepo.Create(ctx, other.ID, "stays", time.Now())
	require.NoError(t, err)

	svc := NewProfileService(db, repository.NewProfileRepository(db), newPolicy(t, db, openClock))

	assert.ErrorIs(t, svc.Delete(ctx, other, victim.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, victim, victim.ID))

	count := func(m any, q string, args ...any) int64 {
		var n int64
		require.NoError(t, db.Model(m).Where(q, args...).Count(&n).Error)
		return n
	}
	assert.Zero(t, count(&model.Follow{}, "follower_id = ? OR followee_id = ?", victim.ID, victim.ID))
	assert.Zero(t, count(&model.FollowRequest{}, "follower_id = ? OR followee_id = ?", victim.ID, victim.ID))
	assert.Zero(t, count(&model.Post{}, "author_id = ?", victim.ID))
	assert.Zero(t, count(&model.Profile{}, "id = ?", victim.ID))
	assert.Zero(t, count(&model.User{}, "id = ?", victim.ID))

	// 别人的数据不受影响
	assert.Equal(t, int64(1), count(&model.Post{}, "author_id = ?", other.ID))
	assert.Equal(t, int64(1), count(&model.Profile{}, "id = ?", other.ID))
	assert.Equal(t, int64(1), count(&model.Profile{}, "id = ?", third.ID))
}
