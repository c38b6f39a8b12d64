package model

import "time"

// User 账号（凭据归认证子系统管，业务层只把它当不可变主键）
type User struct {
    ID        string    `gorm:"primaryKey;type:varchar(36)"`
    Username  string    `gorm:"type:varchar(64);uniqueIndex;not null"`
    Email     string    `gorm:"type:varchar(128)"`
    Password  string    `gorm:"type:varchar(128);not null" json:"-"` // bcrypt hash
    CreatedAt time.Time
    UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
