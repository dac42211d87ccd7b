// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
)

// NotificationRepository 通知仓储实现
type NotificationRepository struct {
	client *Client
}

// NewNotificationRepository 创建通知仓储
func NewNotificationRepository(client *Client) *NotificationRepository {
	return &NotificationRepository{client: client}
}

// Create 创建通知
func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	ctx, span := tracer.Start(ctx, "postgres.NotificationRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(notification).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListByRecipient 获取用户通知列表
func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID string, pagination repository.Pagination) (*repository.PagedResult[*entity.Notification], error) {
	ctx, span := tracer.Start(ctx, "postgres.NotificationRepository.ListByRecipient")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.Notification{}).Where("recipient_id = ?", recipientID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}

	var notifications []*entity.Notification
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&notifications).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return repository.NewPagedResult(notifications, total, pagination), nil
}

// CountUnread 统计未读通知数
func (r *NotificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	ctx, span := tracer.Start(ctx, "postgres.NotificationRepository.CountUnread")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var count int64
	if err := db.Model(&entity.Notification{}).
		Where("recipient_id = ? AND read = false", recipientID).
		Count(&count).Error; err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead 标记单条通知为已读
func (r *NotificationRepository) MarkRead(ctx context.Context, id, recipientID string) error {
	ctx, span := tracer.Start(ctx, "postgres.NotificationRepository.MarkRead")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Model(&entity.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("read", true).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead 标记全部通知为已读
func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientID string) error {
	ctx, span := tracer.Start(ctx, "postgres.NotificationRepository.MarkAllRead")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Model(&entity.Notification{}).
		Where("recipient_id = ? AND read = false", recipientID).
		Update("read", true).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return nil
}
