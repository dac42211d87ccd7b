// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"z-blog-ai-api/internal/domain/entity"
)

// NotificationRepository 通知仓储接口
type NotificationRepository interface {
	// Create 创建通知
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByRecipient 获取用户通知列表
	ListByRecipient(ctx context.Context, recipientID string, pagination Pagination) (*PagedResult[*entity.Notification], error)

	// CountUnread 统计未读通知数
	CountUnread(ctx context.Context, recipientID string) (int64, error)

	// MarkRead 标记单条通知为已读
	MarkRead(ctx context.Context, id, recipientID string) error

	// MarkAllRead 标记全部通知为已读
	MarkAllRead(ctx context.Context, recipientID string) error
}
