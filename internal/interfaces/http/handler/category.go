package handler

import (
	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
	"z-blog-ai-api/internal/interfaces/http/dto"
	"z-blog-ai-api/pkg/errors"
	"z-blog-ai-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 分类处理器
type CategoryHandler struct {
	categories repository.CategoryRepository
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(categories repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// ListAll 获取全部分类
// GET /v1/categories
func (h *CategoryHandler) ListAll(c *gin.Context) {
	categories, err := h.categories.ListAll(c.Request.Context())
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	dto.Success(c, categories)
}

// GetBySlug 获取分类详情
// GET /v1/categories/:slug
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	category, err := h.categories.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if category == nil {
		dto.Error(c, errors.ErrCategoryNotFound)
		return
	}
	dto.Success(c, category)
}

// Create 创建分类（管理员）
// POST /v1/admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	category := &entity.Category{
		Name:        req.Name,
		Slug:        utils.Slugify(req.Name),
		Description: req.Description,
	}

	if err := h.categories.Create(c.Request.Context(), category); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	dto.Created(c, category)
}

// Update 更新分类（管理员）
// PUT /v1/admin/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	category, err := h.categories.GetByID(ctx, c.Param("id"))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if category == nil {
		dto.Error(c, errors.ErrCategoryNotFound)
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
		category.Slug = utils.Slugify(*req.Name)
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := h.categories.Update(ctx, category); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	dto.Success(c, category)
}

// Delete 删除分类（管理员）
// DELETE /v1/admin/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	dto.NoContent(c)
}
