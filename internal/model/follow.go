package model

import (
    "time"
)

// Follow 已生效的关注关系（A 关注 B）。
// 行存在即代表 follower 可见 followee 的内容，可见性判断不做二次过滤，
// 因此待处理的请求绝不能进这张表（见 FollowRequest）。
type Follow struct {
    ID         string `gorm:"primaryKey;type:varchar(36)"`
    FollowerID string `gorm:"type:varchar(36);index:idx_follow_follower;index:idx_follow_pair,unique;not null" json:"follower_id"`
    FolloweeID string `gorm:"type:varchar(36);index:idx_follow_followee;index:idx_follow_pair,unique;not null" json:"followee_id"`
    // 复合唯一键，避免重复关注
    // idx_follow_pair = (follower_id, followee_id)
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"-"`
}

func (Follow) TableName() string { return "follows" }
