package handler

import (
	"time"

	"z-blog-ai-api/internal/application/aigen"
	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
	"z-blog-ai-api/internal/interfaces/http/dto"
	"z-blog-ai-api/pkg/errors"
	"z-blog-ai-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AdminHandler 管理后台处理器
type AdminHandler struct {
	service   *aigen.Service
	users     repository.UserRepository
	posts     repository.PostRepository
	records   repository.GenerationRecordRepository
	auditLogs repository.AuditLogRepository
	producer  Publisher
}

// NewAdminHandler 创建管理后台处理器
func NewAdminHandler(service *aigen.Service, users repository.UserRepository, posts repository.PostRepository, records repository.GenerationRecordRepository, auditLogs repository.AuditLogRepository, producer Publisher) *AdminHandler {
	return &AdminHandler{
		service:   service,
		users:     users,
		posts:     posts,
		records:   records,
		auditLogs: auditLogs,
		producer:  producer,
	}
}

// Dashboard 管理后台概览
// GET /v1/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	one := repository.NewPagination(1, 1)

	userPage, err := h.users.List(ctx, one)
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	postPage, err := h.posts.List(ctx, repository.PostFilter{}, one)
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	publishedPage, err := h.posts.List(ctx, repository.PostFilter{Status: entity.PostStatusPublished}, one)
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	recordPage, err := h.records.List(ctx, repository.GenerationRecordFilter{}, one)
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	dto.Success(c, &dto.DashboardResponse{
		UserCount:       userPage.Total,
		PostCount:       postPage.Total,
		PublishedCount:  publishedPage.Total,
		GenerationCount: recordPage.Total,
	})
}

// PurgeGenerations 清理历史审计记录
// POST /v1/admin/generations/purge
func (h *AdminHandler) PurgeGenerations(c *gin.Context) {
	var req dto.PurgeGenerationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	before, err := time.Parse(time.RFC3339, req.Before)
	if err != nil {
		dto.BadRequest(c, "before must be RFC3339 formatted")
		return
	}

	ctx := c.Request.Context()

	deleted, err := h.service.PurgeGenerations(ctx, before)
	if err != nil {
		dto.Error(c, err)
		return
	}

	publishAudit(c, h.producer, "generation.purge", "generation_record", "",
		map[string]interface{}{"before": req.Before, "deleted": deleted})

	logger.Info(ctx, "generation records purged", "before", req.Before, "deleted", deleted)
	dto.Success(c, &dto.PurgeGenerationsResponse{Deleted: deleted})
}

// AuditLogs 审计日志列表
// GET /v1/admin/audit-logs
func (h *AdminHandler) AuditLogs(c *gin.Context) {
	page, err := h.auditLogs.List(c.Request.Context(), dto.BindPage(c))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	dto.SuccessWithPage(c, page.Items, dto.PageMetaFrom(page))
}
