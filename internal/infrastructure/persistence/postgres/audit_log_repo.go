// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
)

// AuditLogRepository 审计日志仓储实现
type AuditLogRepository struct {
	client *Client
}

// NewAuditLogRepository 创建审计日志仓储
func NewAuditLogRepository(client *Client) *AuditLogRepository {
	return &AuditLogRepository{client: client}
}

// Create 写入审计日志
func (r *AuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	ctx, span := tracer.Start(ctx, "postgres.AuditLogRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(log).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// List 审计日志列表，按创建时间倒序
func (r *AuditLogRepository) List(ctx context.Context, pagination repository.Pagination) (*repository.PagedResult[*entity.AuditLog], error) {
	ctx, span := tracer.Start(ctx, "postgres.AuditLogRepository.List")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.AuditLog{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count audit logs: %w", err)
	}

	var logs []*entity.AuditLog
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&logs).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	return repository.NewPagedResult(logs, total, pagination), nil
}
