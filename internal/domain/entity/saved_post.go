// Package entity 定义领域实体
package entity

import "time"

// SavedPost 收藏记录，用户与文章的唯一组合
type SavedPost struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string    `json:"user_id" gorm:"type:uuid;uniqueIndex:idx_saved_posts_user_post;not null"`
	PostID    string    `json:"post_id" gorm:"type:uuid;uniqueIndex:idx_saved_posts_user_post;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (SavedPost) TableName() string {
	return "saved_posts"
}
