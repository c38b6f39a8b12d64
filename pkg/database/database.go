package database

import (
    "fmt"

    "gorm.io/driver/postgres"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/d60-Lab/sundaynet/config"
    "github.com/d60-Lab/sundaynet/internal/model"
)

// InitDB 按配置打开数据库并迁移表结构
func InitDB(cfg *config.Config) (*gorm.DB, error) {
    var dialector gorm.Dialector
    switch cfg.Database.Driver {
    case "postgres":
        dialector = postgres.Open(cfg.Database.DSN)
    case "sqlite":
        dialector = sqlite.Open(cfg.Database.DSN)
    default:
        return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
    }

    db, err := gorm.Open(dialector, &gorm.Config{
        Logger: gormlogger.Default.LogMode(gormlogger.Warn),
    })
    if err != nil {
        return nil, err
    }

    if err := AutoMigrate(db); err != nil {
        return nil, err
    }
    return db, nil
}

// AutoMigrate 迁移全部业务表，测试里也直接复用
func AutoMigrate(db *gorm.DB) error {
    return db.AutoMigrate(
        &model.User{},
        &model.Profile{},
        &model.Post{},
        &model.Follow{},
        &model.FollowRequest{},
    )
}
