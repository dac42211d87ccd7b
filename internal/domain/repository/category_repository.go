// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"z-blog-ai-api/internal/domain/entity"
)

// CategoryRepository 分类仓储接口
type CategoryRepository interface {
	// Create 创建分类
	Create(ctx context.Context, category *entity.Category) error

	// GetByID 根据 ID 获取分类
	GetByID(ctx context.Context, id string) (*entity.Category, error)

	// GetBySlug 根据 slug 获取分类
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// Update 更新分类
	Update(ctx context.Context, category *entity.Category) error

	// Delete 删除分类
	Delete(ctx context.Context, id string) error

	// ListAll 获取全部分类
	ListAll(ctx context.Context) ([]*entity.Category, error)
}
