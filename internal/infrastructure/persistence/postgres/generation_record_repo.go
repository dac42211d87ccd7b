// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
)

// GenerationRecordRepository AI 生成审计记录仓储实现
type GenerationRecordRepository struct {
	client *Client
}

// NewGenerationRecordRepository 创建审计记录仓储
func NewGenerationRecordRepository(client *Client) *GenerationRecordRepository {
	return &GenerationRecordRepository{client: client}
}

// Create 创建审计记录
func (r *GenerationRecordRepository) Create(ctx context.Context, record *entity.GenerationRecord) error {
	ctx, span := tracer.Start(ctx, "postgres.GenerationRecordRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(record).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create generation record: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取审计记录
func (r *GenerationRecordRepository) GetByID(ctx context.Context, id string) (*entity.GenerationRecord, error) {
	ctx, span := tracer.Start(ctx, "postgres.GenerationRecordRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var record entity.GenerationRecord
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get generation record: %w", err)
	}
	return &record, nil
}

// List 按过滤条件获取审计记录，按创建时间倒序
func (r *GenerationRecordRepository) List(ctx context.Context, filter repository.GenerationRecordFilter, pagination repository.Pagination) (*repository.PagedResult[*entity.GenerationRecord], error) {
	ctx, span := tracer.Start(ctx, "postgres.GenerationRecordRepository.List")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.GenerationRecord{})

	if filter.RequesterID != "" {
		query = query.Where("requester_id = ?", filter.RequesterID)
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count generation records: %w", err)
	}

	var records []*entity.GenerationRecord
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&records).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list generation records: %w", err)
	}

	return repository.NewPagedResult(records, total, pagination), nil
}

// DeleteOlderThan 清理早于指定时间的记录，返回删除条数
func (r *GenerationRecordRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	ctx, span := tracer.Start(ctx, "postgres.GenerationRecordRepository.DeleteOlderThan")
	defer span.End()

	db := getDB(ctx, r.client.db)
	result := db.Delete(&entity.GenerationRecord{}, "created_at < ?", before)
	if result.Error != nil {
		span.RecordError(result.Error)
		return 0, fmt.Errorf("failed to purge generation records: %w", result.Error)
	}
	return result.RowsAffected, nil
}
