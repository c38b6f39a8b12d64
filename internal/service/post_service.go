package service

import (
    "context"
    "errors"

    "gorm.io/gorm"

    "github.com/d60-Lab/sundaynet/internal/model"
    "github.com/d60-Lab/sundaynet/internal/repository"
)

// PostService 帖子读写，所有入口先过 AccessPolicy 再碰存储
type PostService interface {
    Create(ctx context.Context, actor *model.Profile, content string) (*model.Post, error)
    Get(ctx context.Context, actor *model.Profile, id string) (*model.Post, error)
    Delete(ctx context.Context, actor *model.Profile, id string) error
}

type postService struct {
    postRepo repository.PostRepository
    policy   *AccessPolicy
    gate     *SundayGate
}

func NewPostService(postRepo repository.PostRepository, policy *AccessPolicy, gate *SundayGate) PostService {
    return &postService{postRepo: postRepo, policy: policy, gate: gate}
}

// Create 作者强制为当前用户，时间戳由服务端赋值
func (s *postService) Create(ctx context.Context, actor *model.Profile, content string) (*model.Post, error) {
    if err := s.policy.Authorize(ctx, actor, ResourcePost, ActionCreate, nil); err != nil {
        return nil, err
    }
    return s.postRepo.Create(ctx, actor.ID, content, s.gate.Now())
}

func (s *postService) Get(ctx context.Context, actor *model.Profile, id string) (*model.Post, error) {
    post, err := s.postRepo.FindByID(ctx, id)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    if err := s.policy.Authorize(ctx, actor, ResourcePost, ActionRead, post); err != nil {
        return nil, err
    }
    return post, nil
}

func (s *postService) Delete(ctx context.Context, actor *model.Profile, id string) error {
    post, err := s.postRepo.FindByID(ctx, id)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return ErrNotFound
        }
        return err
    }
    if err := s.policy.Authorize(ctx, actor, ResourcePost, ActionDelete, post); err != nil {
        return err
    }
    _, err = s.postRepo.Delete(ctx, id)
    return err
}
