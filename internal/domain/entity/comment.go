// Package entity 定义领域实体
package entity

import "time"

// Comment 评论实体
type Comment struct {
	ID        string     `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID    string     `json:"post_id" gorm:"type:uuid;index;not null"`
	AuthorID  string     `json:"author_id" gorm:"type:uuid;index;not null"`
	ParentID  *string    `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comments"
}

// NewComment 创建新评论
func NewComment(postID, authorID, content string) *Comment {
	now := time.Now()
	return &Comment{
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsReply 检查是否为回复评论
func (c *Comment) IsReply() bool {
	return c.ParentID != nil && *c.ParentID != ""
}

// Edit 编辑评论内容
func (c *Comment) Edit(content string) {
	now := time.Now()
	c.Content = content
	c.EditedAt = &now
	c.UpdatedAt = now
}
