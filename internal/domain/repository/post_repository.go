// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"z-blog-ai-api/internal/domain/entity"
)

// PostFilter 文章列表过滤条件
type PostFilter struct {
	AuthorID   string
	CategoryID string
	Tag        string
	Status     entity.PostStatus
	Featured   *bool
	Search     string
}

// PostRepository 文章仓储接口
type PostRepository interface {
	// Create 创建文章
	Create(ctx context.Context, post *entity.Post) error

	// GetByID 根据 ID 获取文章
	GetByID(ctx context.Context, id string) (*entity.Post, error)

	// GetBySlug 根据 slug 获取文章
	GetBySlug(ctx context.Context, slug string) (*entity.Post, error)

	// Update 更新文章
	Update(ctx context.Context, post *entity.Post) error

	// Delete 删除文章
	Delete(ctx context.Context, id string) error

	// List 按过滤条件获取文章列表
	List(ctx context.Context, filter PostFilter, pagination Pagination) (*PagedResult[*entity.Post], error)

	// ExistsBySlug 检查 slug 是否已占用
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// IncrementViews 浏览量加一
	IncrementViews(ctx context.Context, id string) error

	// AddLike 点赞，重复点赞返回 false
	AddLike(ctx context.Context, postID, userID string) (bool, error)

	// RemoveLike 取消点赞，未点赞返回 false
	RemoveLike(ctx context.Context, postID, userID string) (bool, error)

	// HasLiked 检查用户是否已点赞
	HasLiked(ctx context.Context, postID, userID string) (bool, error)
}
