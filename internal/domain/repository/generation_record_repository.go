// Package repository 定义数据访问层接口
package repository

import (
	"context"
	"time"

	"z-blog-ai-api/internal/domain/entity"
)

// GenerationRecordFilter 审计记录过滤条件
type GenerationRecordFilter struct {
	RequesterID string
	Kind        entity.GenerationKind
}

// GenerationRecordRepository AI 生成审计记录仓储接口
type GenerationRecordRepository interface {
	// Create 创建审计记录
	Create(ctx context.Context, record *entity.GenerationRecord) error

	// GetByID 根据 ID 获取审计记录
	GetByID(ctx context.Context, id string) (*entity.GenerationRecord, error)

	// List 按过滤条件获取审计记录，按创建时间倒序
	List(ctx context.Context, filter GenerationRecordFilter, pagination Pagination) (*PagedResult[*entity.GenerationRecord], error)

	// DeleteOlderThan 清理早于指定时间的记录，返回删除条数
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}
