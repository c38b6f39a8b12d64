package model

import "time"

// Post 内容主体，created_at 由服务端赋值且不可变
type Post struct {
    ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
    AuthorID  string    `gorm:"type:varchar(36);index:idx_post_author;not null" json:"author_id"`
    Content   string    `gorm:"type:varchar(280);not null" json:"content"`
    CreatedAt time.Time `gorm:"index:idx_post_created" json:"created_at"`
}

func (Post) TableName() string { return "posts" }
