// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"z-blog-ai-api/internal/domain/entity"
)

// SavedPostRepository 收藏仓储接口
type SavedPostRepository interface {
	// Save 收藏文章，重复收藏返回 false
	Save(ctx context.Context, userID, postID string) (bool, error)

	// Unsave 取消收藏，未收藏返回 false
	Unsave(ctx context.Context, userID, postID string) (bool, error)

	// IsSaved 检查是否已收藏
	IsSaved(ctx context.Context, userID, postID string) (bool, error)

	// ListByUser 获取用户收藏列表
	ListByUser(ctx context.Context, userID string, pagination Pagination) (*PagedResult[*entity.SavedPost], error)
}
