package handler

import (
	"z-blog-ai-api/internal/domain/repository"
	"z-blog-ai-api/internal/interfaces/http/dto"
	"z-blog-ai-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NotificationHandler 通知处理器
type NotificationHandler struct {
	notifications repository.NotificationRepository
}

// NewNotificationHandler 创建通知处理器
func NewNotificationHandler(notifications repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// ListMine 获取我的通知列表
// GET /v1/notifications
func (h *NotificationHandler) ListMine(c *gin.Context) {
	page, err := h.notifications.ListByRecipient(c.Request.Context(), currentUserID(c), dto.BindPage(c))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	dto.SuccessWithPage(c, page.Items, dto.PageMetaFrom(page))
}

// UnreadCount 获取未读通知数
// GET /v1/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.notifications.CountUnread(c.Request.Context(), currentUserID(c))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	dto.Success(c, gin.H{"unread": count})
}

// MarkRead 标记通知为已读
// POST /v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.notifications.MarkRead(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	dto.NoContent(c)
}

// MarkAllRead 标记全部通知为已读
// POST /v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notifications.MarkAllRead(c.Request.Context(), currentUserID(c)); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	dto.NoContent(c)
}
