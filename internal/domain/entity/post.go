// Package entity 定义领域实体
package entity

import (
	"time"

	"github.com/lib/pq"
)

// PostStatus 文章状态
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

// Post 文章实体
type Post struct {
	ID            string         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AuthorID      string         `json:"author_id" gorm:"type:uuid;index;not null"`
	CategoryID    string         `json:"category_id,omitempty" gorm:"type:uuid;index"`
	Title         string         `json:"title" gorm:"type:varchar(255);not null"`
	Slug          string         `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	Summary       string         `json:"summary,omitempty" gorm:"type:text"`
	Content       string         `json:"content" gorm:"type:text;not null"`
	CoverURL      string         `json:"cover_url,omitempty" gorm:"type:varchar(512)"`
	Tags          pq.StringArray `json:"tags,omitempty" gorm:"type:text[]"`
	Status        PostStatus     `json:"status" gorm:"type:varchar(20);default:'draft'"`
	Views         int64          `json:"views" gorm:"default:0"`
	LikeCount     int64          `json:"like_count" gorm:"default:0"`
	Featured      bool           `json:"featured" gorm:"default:false"`
	IsAIGenerated bool           `json:"is_ai_generated" gorm:"default:false"`
	PublishedAt   *time.Time     `json:"published_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}

// NewPost 创建新文章
func NewPost(authorID, title, content string) *Post {
	now := time.Now()
	return &Post{
		AuthorID:  authorID,
		Title:     title,
		Content:   content,
		Status:    PostStatusDraft,
		Tags:      pq.StringArray{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsPublished 检查文章是否已发布
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// Publish 发布文章
func (p *Post) Publish() {
	if p.Status == PostStatusPublished {
		return
	}
	now := time.Now()
	p.Status = PostStatusPublished
	p.PublishedAt = &now
	p.UpdatedAt = now
}

// Archive 归档文章
func (p *Post) Archive() {
	p.Status = PostStatusArchived
	p.UpdatedAt = time.Now()
}

// CanEditBy 检查用户是否可编辑该文章
func (p *Post) CanEditBy(u *User) bool {
	return p.AuthorID == u.ID || u.CanModerate()
}

// PostLike 文章点赞记录
type PostLike struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID    string    `json:"post_id" gorm:"type:uuid;uniqueIndex:idx_post_likes_post_user;not null"`
	UserID    string    `json:"user_id" gorm:"type:uuid;uniqueIndex:idx_post_likes_post_user;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (PostLike) TableName() string {
	return "post_likes"
}
