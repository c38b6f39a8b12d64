package service

import (
    "context"

    "github.com/d60-Lab/sundaynet/internal/model"
    "github.com/d60-Lab/sundaynet/internal/repository"
)

// FeedService 本周可见流：本人 + 关注对象的帖子，
// 截取到窗口起点之后，按时间倒序。每次调用现算，不缓存——
// 开放状态和窗口边界都随时钟移动。
type FeedService interface {
    FeedFor(ctx context.Context, userID string, page, pageSize int) ([]*model.Post, error)
}

type feedService struct {
    postRepo repository.PostRepository
    gate     *SundayGate
}

func NewFeedService(postRepo repository.PostRepository, gate *SundayGate) FeedService {
    return &feedService{postRepo: postRepo, gate: gate}
}

func (s *feedService) FeedFor(ctx context.Context, userID string, page, pageSize int) ([]*model.Post, error) {
    offset, limit := pageBounds(page, pageSize)
    return s.postRepo.ListVisibleSince(ctx, userID, s.gate.WindowStart(), offset, limit)
}
