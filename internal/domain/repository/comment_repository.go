// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"z-blog-ai-api/internal/domain/entity"
)

// CommentRepository 评论仓储接口
type CommentRepository interface {
	// Create 创建评论
	Create(ctx context.Context, comment *entity.Comment) error

	// GetByID 根据 ID 获取评论
	GetByID(ctx context.Context, id string) (*entity.Comment, error)

	// Update 更新评论
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete 删除评论及其回复
	Delete(ctx context.Context, id string) error

	// ListByPost 获取文章评论列表
	ListByPost(ctx context.Context, postID string, pagination Pagination) (*PagedResult[*entity.Comment], error)

	// CountByPost 统计文章评论数
	CountByPost(ctx context.Context, postID string) (int64, error)
}
