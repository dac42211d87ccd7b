package dto

import "z-blog-ai-api/internal/domain/entity"

// CreatePostRequest 创建文章请求
type CreatePostRequest struct {
	Title         string   `json:"title" binding:"required,max=255"`
	Content       string   `json:"content" binding:"required"`
	Summary       string   `json:"summary,omitempty"`
	CategoryID    string   `json:"category_id,omitempty"`
	CoverURL      string   `json:"cover_url,omitempty" binding:"omitempty,max=512"`
	Tags          []string `json:"tags,omitempty"`
	IsAIGenerated bool     `json:"is_ai_generated,omitempty"`
	Publish       bool     `json:"publish,omitempty"`
}

// UpdatePostRequest 更新文章请求
type UpdatePostRequest struct {
	Title      *string  `json:"title,omitempty" binding:"omitempty,max=255"`
	Content    *string  `json:"content,omitempty"`
	Summary    *string  `json:"summary,omitempty"`
	CategoryID *string  `json:"category_id,omitempty"`
	CoverURL   *string  `json:"cover_url,omitempty" binding:"omitempty,max=512"`
	Tags       []string `json:"tags,omitempty"`
}

// PostListQuery 文章列表查询参数
type PostListQuery struct {
	PageQuery
	AuthorID   string `form:"author_id"`
	CategoryID string `form:"category_id"`
	Tag        string `form:"tag"`
	Status     string `form:"status"`
	Featured   *bool  `form:"featured"`
	Search     string `form:"search"`
}

// PostResponse 文章详情响应，附带评论数与当前用户点赞状态
type PostResponse struct {
	*entity.Post
	CommentCount int64 `json:"comment_count"`
	Liked        bool  `json:"liked"`
}
