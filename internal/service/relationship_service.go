package service

import (
    "context"
    "errors"

    "github.com/google/uuid"
    "gorm.io/gorm"
    "gorm.io/gorm/clause"

    "github.com/d60-Lab/sundaynet/internal/cache"
    "github.com/d60-Lab/sundaynet/internal/model"
    "github.com/d60-Lab/sundaynet/internal/repository"
)

// FollowStatus 关系操作结果，回给调用方展示
type FollowStatus string

const (
    StatusFollowing       FollowStatus = "following"
    StatusPendingApproval FollowStatus = "pending_approval"
    StatusNotFollowing    FollowStatus = "not_following"
)

// RelationshipService 关系链服务：关注请求状态机 + 关注边维护。
// 每个有序对 (follower, followee) 的状态只有三种：
// 无记录 → follow_requests 有行（待处理）→ follows 有行（已生效）或回到无记录。
type RelationshipService interface {
    // Follow 直接关注公开账号；目标为私密账号时降级为待处理请求
    Follow(ctx context.Context, fromID, toID string) (FollowStatus, error)
    Unfollow(ctx context.Context, fromID, toID string) error
    CreateRequest(ctx context.Context, fromID, toID string) error
    // Accept 在同一事务里建边并删请求，不允许出现中间态
    Accept(ctx context.Context, followerID, followeeID string) error
    Reject(ctx context.Context, followerID, followeeID string) error
    // GetRequest / GetFollow 取单条边，供调用方先过 AccessPolicy 再操作
    GetRequest(ctx context.Context, followerID, followeeID string) (*model.FollowRequest, error)
    GetFollow(ctx context.Context, followerID, followeeID string) (*model.Follow, error)
    ListIncoming(ctx context.Context, followeeID string, page, pageSize int) ([]*model.FollowRequest, error)
    ListFollowing(ctx context.Context, userID string, page, pageSize int) ([]*model.Profile, error)
    ListFollowers(ctx context.Context, userID string, page, pageSize int) ([]*model.Profile, error)
    IsFollowing(ctx context.Context, fromID, toID string) (bool, error)
}

type relationshipService struct {
    db            *gorm.DB
    followRepo    repository.FollowRepository
    requestRepo   repository.FollowRequestRepository
    profileRepo   repository.ProfileRepository
    followerCache *cache.FollowerCache // 可为 nil
}

func NewRelationshipService(
    db *gorm.DB,
    followRepo repository.FollowRepository,
    requestRepo repository.FollowRequestRepository,
    profileRepo repository.ProfileRepository,
    followerCache *cache.FollowerCache,
) RelationshipService {
    return &relationshipService{
        db:            db,
        followRepo:    followRepo,
        requestRepo:   requestRepo,
        profileRepo:   profileRepo,
        followerCache: followerCache,
    }
}

func (s *relationshipService) Follow(ctx context.Context, fromID, toID string) (FollowStatus, error) {
    if fromID == toID {
        return StatusNotFollowing, ErrFollowSelf
    }
    target, err := s.profileRepo.FindByID(ctx, toID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return StatusNotFollowing, ErrNotFound
        }
        return StatusNotFollowing, err
    }

    if exists, err := s.followRepo.Exists(ctx, fromID, toID); err != nil {
        return StatusNotFollowing, err
    } else if exists {
        return StatusFollowing, ErrAlreadyFollowing
    }
    if exists, err := s.requestRepo.Exists(ctx, fromID, toID); err != nil {
        return StatusNotFollowing, err
    } else if exists {
        return StatusPendingApproval, ErrAlreadyRequested
    }

    // 私密账号只能走请求/同意流程
    if target.Private {
        created, err := s.requestRepo.Create(ctx, fromID, toID)
        if err != nil {
            return StatusNotFollowing, err
        }
        if !created {
            return StatusPendingApproval, ErrAlreadyRequested
        }
        return StatusPendingApproval, nil
    }

    created, err := s.followRepo.Create(ctx, fromID, toID)
    if err != nil {
        return StatusNotFollowing, err
    }
    if !created {
        return StatusFollowing, ErrAlreadyFollowing
    }
    s.invalidate(ctx, fromID, toID)
    return StatusFollowing, nil
}

func (s *relationshipService) Unfollow(ctx context.Context, fromID, toID string) error {
    deleted, err := s.followRepo.Delete(ctx, fromID, toID)
    if err != nil {
        return err
    }
    if !deleted {
        return ErrNotFound
    }
    s.invalidate(ctx, fromID, toID)
    return nil
}

func (s *relationshipService) CreateRequest(ctx context.Context, fromID, toID string) error {
    if fromID == toID {
        return ErrFollowSelf
    }
    if _, err := s.profileRepo.FindByID(ctx, toID); err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return ErrNotFound
        }
        return err
    }
    if exists, err := s.followRepo.Exists(ctx, fromID, toID); err != nil {
        return err
    } else if exists {
        return ErrAlreadyFollowing
    }
    if exists, err := s.requestRepo.Exists(ctx, fromID, toID); err != nil {
        return err
    } else if exists {
        return ErrAlreadyRequested
    }
    created, err := s.requestRepo.Create(ctx, fromID, toID)
    if err != nil {
        return err
    }
    if !created {
        // 并发重入，唯一键把竞态收敛为一条成功一条冲突
        return ErrAlreadyRequested
    }
    return nil
}

// Accept 把待处理请求原子地转成关注边：同一事务内建 Follow、删 FollowRequest，
// 并发 double-accept 下也不会出现两行都在或都不在的瞬间。
func (s *relationshipService) Accept(ctx context.Context, followerID, followeeID string) error {
    err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        res := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
            Delete(&model.FollowRequest{})
        if res.Error != nil {
            return res.Error
        }
        if res.RowsAffected == 0 {
            return ErrNotFound
        }
        f := &model.Follow{ID: uuid.New().String(), FollowerID: followerID, FolloweeID: followeeID}
        return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
    })
    if err != nil {
        return err
    }
    s.invalidate(ctx, followerID, followeeID)
    return nil
}

func (s *relationshipService) Reject(ctx context.Context, followerID, followeeID string) error {
    deleted, err := s.requestRepo.Delete(ctx, followerID, followeeID)
    if err != nil {
        return err
    }
    if !deleted {
        return ErrNotFound
    }
    return nil
}

func (s *relationshipService) GetRequest(ctx context.Context, followerID, followeeID string) (*model.FollowRequest, error) {
    req, err := s.requestRepo.Find(ctx, followerID, followeeID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    return req, nil
}

func (s *relationshipService) GetFollow(ctx context.Context, followerID, followeeID string) (*model.Follow, error) {
    f, err := s.followRepo.Find(ctx, followerID, followeeID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    return f, nil
}

func (s *relationshipService) ListIncoming(ctx context.Context, followeeID string, page, pageSize int) ([]*model.FollowRequest, error) {
    offset, limit := pageBounds(page, pageSize)
    return s.requestRepo.ListIncoming(ctx, followeeID, offset, limit)
}

func (s *relationshipService) ListFollowing(ctx context.Context, userID string, page, pageSize int) ([]*model.Profile, error) {
    offset, limit := pageBounds(page, pageSize)
    if s.followerCache != nil {
        if rows, ok := s.followerCache.GetPage(ctx, cache.KindFollowing, userID, page, pageSize); ok {
            return rows, nil
        }
    }
    rows, err := s.followRepo.ListFollowees(ctx, userID, offset, limit)
    if err != nil {
        return nil, err
    }
    if s.followerCache != nil {
        s.followerCache.SetPage(ctx, cache.KindFollowing, userID, page, pageSize, rows)
    }
    return rows, nil
}

func (s *relationshipService) ListFollowers(ctx context.Context, userID string, page, pageSize int) ([]*model.Profile, error) {
    offset, limit := pageBounds(page, pageSize)
    if s.followerCache != nil {
        if rows, ok := s.followerCache.GetPage(ctx, cache.KindFollowers, userID, page, pageSize); ok {
            return rows, nil
        }
    }
    rows, err := s.followRepo.ListFollowers(ctx, userID, offset, limit)
    if err != nil {
        return nil, err
    }
    if s.followerCache != nil {
        s.followerCache.SetPage(ctx, cache.KindFollowers, userID, page, pageSize, rows)
    }
    return rows, nil
}

func (s *relationshipService) IsFollowing(ctx context.Context, fromID, toID string) (bool, error) {
    return s.followRepo.Exists(ctx, fromID, toID)
}

func (s *relationshipService) invalidate(ctx context.Context, followerID, followeeID string) {
    if s.followerCache == nil {
        return
    }
    s.followerCache.Invalidate(ctx, cache.KindFollowing, followerID)
    s.followerCache.Invalidate(ctx, cache.KindFollowers, followeeID)
}

func pageBounds(page, pageSize int) (offset, limit int) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 10
    }
    return (page - 1) * pageSize, pageSize
}
