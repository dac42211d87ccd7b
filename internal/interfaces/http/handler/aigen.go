package handler

import (
	"z-blog-ai-api/internal/application/aigen"
	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
	"z-blog-ai-api/internal/interfaces/http/dto"
	"z-blog-ai-api/pkg/errors"
	"z-blog-ai-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AIGenHandler AI 生成处理器
type AIGenHandler struct {
	service *aigen.Service
}

// NewAIGenHandler 创建 AI 生成处理器
func NewAIGenHandler(service *aigen.Service) *AIGenHandler {
	return &AIGenHandler{service: service}
}

// GenerateContent 生成博客正文
// POST /v1/ai/generate-content
func (h *AIGenHandler) GenerateContent(c *gin.Context) {
	var req dto.GenerateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, errors.ErrValidationFailed.WithDetail(err.Error()))
		return
	}

	ctx := c.Request.Context()

	result, err := h.service.GenerateContent(ctx, &aigen.ContentRequest{
		Topic:         req.Topic,
		Audience:      req.Audience,
		Tone:          req.Tone,
		Structure:     req.Structure,
		Keywords:      req.Keywords,
		Length:        req.Length,
		UserID:        currentUserID(c),
		RelatedPostID: req.RelatedPostID,
	})
	if err != nil {
		dto.Error(c, err)
		return
	}

	logger.Info(ctx, "content generated", "record_id", result.RecordID, "model", result.Model)
	dto.Created(c, result)
}

// GenerateTitles 生成候选标题
// POST /v1/ai/generate-title
func (h *AIGenHandler) GenerateTitles(c *gin.Context) {
	var req dto.GenerateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, errors.ErrValidationFailed.WithDetail(err.Error()))
		return
	}

	ctx := c.Request.Context()

	result, err := h.service.GenerateTitles(ctx, &aigen.TitleRequest{
		Content:       req.Content,
		UserID:        currentUserID(c),
		RelatedPostID: req.RelatedPostID,
	})
	if err != nil {
		dto.Error(c, err)
		return
	}

	logger.Info(ctx, "titles generated", "record_id", result.RecordID, "count", len(result.Titles))
	dto.Created(c, result)
}

// ListGenerations 审计记录列表（管理员），按创建时间倒序
// GET /v1/ai/generations
func (h *AIGenHandler) ListGenerations(c *gin.Context) {
	var q dto.GenerationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	kind := entity.GenerationKind(q.Kind)
	if q.Kind != "" && !kind.IsValid() {
		dto.BadRequest(c, "invalid kind")
		return
	}

	page, err := h.service.ListGenerations(c.Request.Context(),
		repository.GenerationRecordFilter{
			RequesterID: q.RequesterID,
			Kind:        kind,
		},
		repository.NewPagination(q.Page, q.PageSize))
	if err != nil {
		dto.Error(c, err)
		return
	}

	dto.SuccessWithPage(c, page.Items, dto.PageMetaFrom(page))
}
