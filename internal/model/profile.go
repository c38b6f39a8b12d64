package model

import "time"

// Profile 用户资料，与 User 一对一
type Profile struct {
    ID        string    `gorm:"primaryKey;type:varchar(36)"` // 与 users.id 相同
    Bio       string    `gorm:"type:varchar(100)" json:"bio"`
    Private   bool      `gorm:"not null;default:false" json:"private"` // 私密账号需先请求再关注
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"-"`
}

func (Profile) TableName() string { return "profiles" }
