package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"z-blog-ai-api/internal/infrastructure/messaging"
	"z-blog-ai-api/pkg/logger"
)

// Publisher 事件发布接口，由 messaging.Producer 实现
type Publisher interface {
	PublishNotification(ctx context.Context, event *messaging.NotificationMessage) (string, error)
	PublishAuditLog(ctx context.Context, log *messaging.AuditLogMessage) (string, error)
}

// publishAudit 发布管理操作审计事件，发布失败只记日志不阻断请求
func publishAudit(c *gin.Context, pub Publisher, action, resourceType, resourceID string, metadata map[string]interface{}) {
	ctx := c.Request.Context()
	_, err := pub.PublishAuditLog(ctx, &messaging.AuditLogMessage{
		UserID:       currentUserID(c),
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		RequestID:    c.GetString("request_id"),
		TraceID:      c.GetString("trace_id"),
		IPAddress:    c.ClientIP(),
		Metadata:     metadata,
	})
	if err != nil {
		logger.Warn(ctx, "failed to publish audit log", "action", action, "error", err.Error())
	}
}
