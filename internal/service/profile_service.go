package service

import (
    "context"
    "errors"

    "gorm.io/gorm"

    "github.com/d60-Lab/sundaynet/internal/model"
    "github.com/d60-Lab/sundaynet/internal/repository"
)

// ProfileService 资料读写与删号级联
type ProfileService interface {
    Get(ctx context.Context, actor *model.Profile, targetID string) (*model.Profile, error)
    Update(ctx context.Context, actor *model.Profile, targetID, bio string, private bool) (*model.Profile, error)
    // Delete 删除资料并级联清理其全部关注边、待处理请求与帖子。
    // 目标环境没有外键级联，这里显式走一遍。
    Delete(ctx context.Context, actor *model.Profile, targetID string) error
}

type profileService struct {
    db          *gorm.DB
    profileRepo repository.ProfileRepository
    policy      *AccessPolicy
}

func NewProfileService(db *gorm.DB, profileRepo repository.ProfileRepository, policy *AccessPolicy) ProfileService {
    return &profileService{db: db, profileRepo: profileRepo, policy: policy}
}

func (s *profileService) Get(ctx context.Context, actor *model.Profile, targetID string) (*model.Profile, error) {
    target, err := s.find(ctx, targetID)
    if err != nil {
        return nil, err
    }
    if err := s.policy.Authorize(ctx, actor, ResourceProfile, ActionRead, target); err != nil {
        return nil, err
    }
    return target, nil
}

func (s *profileService) Update(ctx context.Context, actor *model.Profile, targetID, bio string, private bool) (*model.Profile, error) {
    target, err := s.find(ctx, targetID)
    if err != nil {
        return nil, err
    }
    if err := s.policy.Authorize(ctx, actor, ResourceProfile, ActionUpdate, target); err != nil {
        return nil, err
    }
    target.Bio = bio
    target.Private = private
    if err := s.profileRepo.Update(ctx, target); err != nil {
        return nil, err
    }
    return target, nil
}

func (s *profileService) Delete(ctx context.Context, actor *model.Profile, targetID string) error {
    target, err := s.find(ctx, targetID)
    if err != nil {
        return err
    }
    if err := s.policy.Authorize(ctx, actor, ResourceProfile, ActionDelete, target); err != nil {
        return err
    }
    // 级联顺序：边 → 请求 → 帖子 → 资料 → 账号，单事务
    return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        if err := tx.Where("follower_id = ? OR followee_id = ?", targetID, targetID).
            Delete(&model.Follow{}).Error; err != nil {
            return err
        }
        if err := tx.Where("follower_id = ? OR followee_id = ?", targetID, targetID).
            Delete(&model.FollowRequest{}).Error; err != nil {
            return err
        }
        if err := tx.Where("author_id = ?", targetID).Delete(&model.Post{}).Error; err != nil {
            return err
        }
        if err := tx.Where("id = ?", targetID).Delete(&model.Profile{}).Error; err != nil {
            return err
        }
        return tx.Where("id = ?", targetID).Delete(&model.User{}).Error
    })
}

func (s *profileService) find(ctx context.Context, id string) (*model.Profile, error) {
    p, err := s.profileRepo.FindByID(ctx, id)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    return p, nil
}
