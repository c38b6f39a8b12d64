package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"
    "gorm.io/gorm/clause"

    "github.com/d60-Lab/sundaynet/internal/model"
)

type FollowRequestRepository interface {
    // Create 返回是否真的新建了请求；并发重复请求只有一条成功
    Create(ctx context.Context, followerID, followeeID string) (bool, error)
    Delete(ctx context.Context, followerID, followeeID string) (bool, error)
    Exists(ctx context.Context, followerID, followeeID string) (bool, error)
    Find(ctx context.Context, followerID, followeeID string) (*model.FollowRequest, error)
    // ListIncoming 列出发给 followee 的待处理请求
    ListIncoming(ctx context.Context, followeeID string, offset, limit int) ([]*model.FollowRequest, error)
}

type followRequestRepository struct {
    db *gorm.DB
}

func NewFollowRequestRepository(db *gorm.DB) FollowRequestRepository {
    return &followRequestRepository{db: db}
}

func (r *followRequestRepository) Create(ctx context.Context, followerID, followeeID string) (bool, error) {
    req := &model.FollowRequest{ID: uuid.New().String(), FollowerID: followerID, FolloweeID: followeeID}
    res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(req)
    return res.RowsAffected > 0, res.Error
}

func (r *followRequestRepository) Delete(ctx context.Context, followerID, followeeID string) (bool, error) {
    res := r.db.WithContext(ctx).
        Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
        Delete(&model.FollowRequest{})
    return res.RowsAffected > 0, res.Error
}

func (r *followRequestRepository) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.FollowRequest{}).
        Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *followRequestRepository) Find(ctx context.Context, followerID, followeeID string) (*model.FollowRequest, error) {
    var req model.FollowRequest
    err := r.db.WithContext(ctx).
        Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
        First(&req).Error
    if err != nil {
        return nil, err
    }
    return &req, nil
}

func (r *followRequestRepository) ListIncoming(ctx context.Context, followeeID string, offset, limit int) ([]*model.FollowRequest, error) {
    var res []*model.FollowRequest
    err := r.db.WithContext(ctx).
        Where("followee_id = ?", followeeID).
        Order("created_at DESC").
        Offset(offset).Limit(limit).
        Find(&res).Error
    return res, err
}
