package repository

import (
	"context"

	"z-blog-ai-api/internal/domain/entity"
)

// AuditLogRepository 审计日志仓储接口
type AuditLogRepository interface {
	// Create 写入审计日志
	Create(ctx context.Context, log *entity.AuditLog) error

	// List 审计日志列表，按创建时间倒序
	List(ctx context.Context, pagination Pagination) (*PagedResult[*entity.AuditLog], error)
}
