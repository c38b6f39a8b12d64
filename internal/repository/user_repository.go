package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/sundaynet/internal/model"
)

type UserRepository interface {
    Create(ctx context.Context, u *model.User) error
    FindByID(ctx context.Context, id string) (*model.User, error)
    FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepository struct {
    db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
    return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}
