package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/sundaynet/internal/model"
	"github.com/d60-Lab/sundaynet/pkg/database"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func seedPair(t *testing.T, db *gorm.DB) (a, b string) {
	t.Helper()
	for _, name := range []string{"a", "b"} {
		id := uuid.New().String()
		require.NoError(t, db.Create(&model.User{ID: id, Username: name, Password: "x"}).Error)
		require.NoError(t, db.Create(&model.Profile{ID: id}).Error)
		if name == "a" {
			a = id
		} else {
			b = id
		}
	}
	return a, b
}

func TestFollowPairUniqueness(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	a, b := seedPair(t, db)

	created, err := repo.Create(ctx, a, b)
	require.NoError(t, err)
	assert.True(t, created)

	// 唯一键把重复写收敛成无操作
	created, err = repo.Create(ctx, a, b)
	require.NoError(t, err)
	assert.False(t, created)

	var cnt int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)

	// 方向敏感：反向是另一条边
	created, err = repo.Create(ctx, b, a)
	require.NoError(t, err)
	assert.True(t, created)

	exists, err := repo.Exists(ctx, a, b)
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := repo.Delete(ctx, a, b)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.Delete(ctx, a, b)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestFollowRequestPairUniqueness(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewFollowRequestRepository(db)
	ctx := context.Background()
	a, b := seedPair(t, db)

	created, err := repo.Create(ctx, a, b)
	require.NoError(t, err)
	assert.True(t, created)
	created, err = repo.Create(ctx, a, b)
	require.NoError(t, err)
	assert.False(t, created)

	req, err := repo.Find(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, a, req.FollowerID)

	_, err = repo.Find(ctx, b, a)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListFolloweesJoinsProfiles(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	a, b := seedPair(t, db)

	_, err := repo.Create(ctx, a, b)
	require.NoError(t, err)

	followees, err := repo.ListFollowees(ctx, a, 0, 10)
	require.NoError(t, err)
	require.Len(t, followees, 1)
	assert.Equal(t, b, followees[0].ID)

	followers, err := repo.ListFollowers(ctx, b, 0, 10)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, a, followers[0].ID)

	followers, err = repo.ListFollowers(ctx, a, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, followers)
}
