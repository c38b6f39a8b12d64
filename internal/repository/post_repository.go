package repository

import (
    "context"
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/sundaynet/internal/model"
)

type PostRepository interface {
    Create(ctx context.Context, authorID, content string, createdAt time.Time) (*model.Post, error)
    Delete(ctx context.Context, id string) (bool, error)
    FindByID(ctx context.Context, id string) (*model.Post, error)
    ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]*model.Post, error)
    // ListVisibleSince 取 userID 本人及其关注对象在 since 之后发布的内容，按时间倒序。
    // 每次现查，不做缓存：窗口边界随时钟移动。
    ListVisibleSince(ctx context.Context, userID string, since time.Time, offset, limit int) ([]*model.Post, error)
}

type postRepository struct {
    db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, authorID, content string, createdAt time.Time) (*model.Post, error) {
    p := &model.Post{ID: uuid.New().String(), AuthorID: authorID, Content: content, CreatedAt: createdAt}
    if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
        return nil, err
    }
    return p, nil
}

func (r *postRepository) Delete(ctx context.Context, id string) (bool, error) {
    res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
    return res.RowsAffected > 0, res.Error
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
    var p model.Post
    if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
        return nil, err
    }
    return &p, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]*model.Post, error) {
    var res []*model.Post
    err := r.db.WithContext(ctx).
        Where("author_id = ?", authorID).
        Order("created_at DESC").
        Offset(offset).Limit(limit).
        Find(&res).Error
    return res, err
}

func (r *postRepository) ListVisibleSince(ctx context.Context, userID string, since time.Time, offset, limit int) ([]*model.Post, error) {
    sub := r.db.Model(&model.Follow{}).Select("followee_id").Where("follower_id = ?", userID)
    var res []*model.Post
    err := r.db.WithContext(ctx).
        Where("(author_id IN (?) OR author_id = ?) AND created_at >= ?", sub, userID, since).
        Order("created_at DESC").
        Offset(offset).Limit(limit).
        Find(&res).Error
    return res, err
}
