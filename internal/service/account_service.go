package service

import (
    "context"
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/google/uuid"
    "golang.org/x/crypto/bcrypt"
    "gorm.io/gorm"

    "github.com/d60-Lab/sundaynet/internal/model"
    "github.com/d60-Lab/sundaynet/internal/repository"
)

var (
    ErrUsernameTaken      = errors.New("username already taken")
    ErrInvalidCredentials = errors.New("invalid username or password")
)

// AccountService 注册/登录。凭据处理与权限核心无关，
// 核心只消费中间件还原出来的当前 Profile。
type AccountService interface {
    Register(ctx context.Context, username, email, password, bio string, private bool) (*model.Profile, error)
    Login(ctx context.Context, username, password string) (string, error)
}

type accountService struct {
    db         *gorm.DB
    userRepo   repository.UserRepository
    jwtSecret  []byte
    jwtExpires time.Duration
}

func NewAccountService(db *gorm.DB, userRepo repository.UserRepository, jwtSecret string, jwtExpires time.Duration) AccountService {
    if jwtExpires <= 0 {
        jwtExpires = 72 * time.Hour
    }
    return &accountService{db: db, userRepo: userRepo, jwtSecret: []byte(jwtSecret), jwtExpires: jwtExpires}
}

// Register 账号与资料一对一，同一事务创建
func (s *accountService) Register(ctx context.Context, username, email, password, bio string, private bool) (*model.Profile, error) {
    hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        return nil, err
    }

    id := uuid.New().String()
    profile := &model.Profile{ID: id, Bio: bio, Private: private}
    err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        var cnt int64
        if err := tx.Model(&model.User{}).Where("username = ?", username).Count(&cnt).Error; err != nil {
            return err
        }
        if cnt > 0 {
            return ErrUsernameTaken
        }
        u := &model.User{ID: id, Username: username, Email: email, Password: string(hash)}
        if err := tx.Create(u).Error; err != nil {
            return err
        }
        return tx.Create(profile).Error
    })
    if err != nil {
        return nil, err
    }
    return profile, nil
}

func (s *accountService) Login(ctx context.Context, username, password string) (string, error) {
    u, err := s.userRepo.FindByUsername(ctx, username)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return "", ErrInvalidCredentials
        }
        return "", err
    }
    if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
        return "", ErrInvalidCredentials
    }

    now := time.Now()
    claims := jwt.RegisteredClaims{
        Subject:   u.ID,
        IssuedAt:  jwt.NewNumericDate(now),
        ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpires)),
    }
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return token.SignedString(s.jwtSecret)
}
