package model

import "time"

// FollowRequest 待处理的关注请求，与 Follow 同构但独立成表。
// 同一 (follower, followee) 逻辑上只会出现在两张表之一：
// accept 时转成 Follow 并删除本行，reject 时直接删除。
type FollowRequest struct {
    ID         string `gorm:"primaryKey;type:varchar(36)"`
    FollowerID string `gorm:"type:varchar(36);index:idx_request_follower;index:idx_request_pair,unique;not null" json:"follower_id"`
    FolloweeID string `gorm:"type:varchar(36);index:idx_request_followee;index:idx_request_pair,unique;not null" json:"followee_id"`
    // 复合唯一键，并发重复请求只会成功一条
    // idx_request_pair = (follower_id, followee_id)
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"-"`
}

func (FollowRequest) TableName() string { return "follow_requests" }
