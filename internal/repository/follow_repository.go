package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"
    "gorm.io/gorm/clause"

    "github.com/d60-Lab/sundaynet/internal/model"
)

type FollowRepository interface {
    // Create 返回是否真的新建了边；唯一键冲突时为 false
    Create(ctx context.Context, followerID, followeeID string) (bool, error)
    // Delete 返回是否真的删除了边
    Delete(ctx context.Context, followerID, followeeID string) (bool, error)
    Exists(ctx context.Context, followerID, followeeID string) (bool, error)
    Find(ctx context.Context, followerID, followeeID string) (*model.Follow, error)
    ListFollowees(ctx context.Context, followerID string, offset, limit int) ([]*model.Profile, error)
    ListFollowers(ctx context.Context, followeeID string, offset, limit int) ([]*model.Profile, error)
}

type followRepository struct {
    db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

func (r *followRepository) Create(ctx context.Context, followerID, followeeID string) (bool, error) {
    f := &model.Follow{ID: uuid.New().String(), FollowerID: followerID, FolloweeID: followeeID}
    // 幂等：并发重复关注由 idx_follow_pair 收敛成一条
    res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f)
    return res.RowsAffected > 0, res.Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID string) (bool, error) {
    res := r.db.WithContext(ctx).
        Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
        Delete(&model.Follow{})
    return res.RowsAffected > 0, res.Error
}

func (r *followRepository) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.Follow{}).
        Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *followRepository) Find(ctx context.Context, followerID, followeeID string) (*model.Follow, error) {
    var f model.Follow
    err := r.db.WithContext(ctx).
        Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
        First(&f).Error
    if err != nil {
        return nil, err
    }
    return &f, nil
}

func (r *followRepository) ListFollowees(ctx context.Context, followerID string, offset, limit int) ([]*model.Profile, error) {
    var res []*model.Profile
    err := r.db.WithContext(ctx).
        Table("follows").
        Select("profiles.*").
        Joins("JOIN profiles ON profiles.id = follows.followee_id").
        Where("follows.follower_id = ?", followerID).
        Order("follows.created_at DESC").
        Offset(offset).Limit(limit).
        Scan(&res).Error
    return res, err
}

func (r *followRepository) ListFollowers(ctx context.Context, followeeID string, offset, limit int) ([]*model.Profile, error) {
    var res []*model.Profile
    err := r.db.WithContext(ctx).
        Table("follows").
        Select("profiles.*").
        Joins("JOIN profiles ON profiles.id = follows.follower_id").
        Where("follows.followee_id = ?", followeeID).
        Order("follows.created_at DESC").
        Offset(offset).Limit(limit).
        Scan(&res).Error
    return res, err
}
