package handler

import (
	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
	"z-blog-ai-api/internal/interfaces/http/dto"
	"z-blog-ai-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// SavedPostHandler 收藏处理器
type SavedPostHandler struct {
	saved repository.SavedPostRepository
	posts repository.PostRepository
}

// NewSavedPostHandler 创建收藏处理器
func NewSavedPostHandler(saved repository.SavedPostRepository, posts repository.PostRepository) *SavedPostHandler {
	return &SavedPostHandler{
		saved: saved,
		posts: posts,
	}
}

// Save 收藏文章
// POST /v1/posts/:id/save
func (h *SavedPostHandler) Save(c *gin.Context) {
	ctx := c.Request.Context()
	postID := c.Param("id")

	post, err := h.posts.GetByID(ctx, postID)
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if post == nil {
		dto.Error(c, errors.ErrPostNotFound)
		return
	}

	if _, err := h.saved.Save(ctx, currentUserID(c), postID); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	dto.Success(c, gin.H{"saved": true})
}

// Unsave 取消收藏
// DELETE /v1/posts/:id/save
func (h *SavedPostHandler) Unsave(c *gin.Context) {
	if _, err := h.saved.Unsave(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	dto.Success(c, gin.H{"saved": false})
}

// ListMine 获取我的收藏列表
// GET /v1/saved-posts
func (h *SavedPostHandler) ListMine(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := h.saved.ListByUser(ctx, currentUserID(c), dto.BindPage(c))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	// 收藏页容量有限，逐条取文章详情
	posts := make([]*entity.Post, 0, len(page.Items))
	for _, sp := range page.Items {
		post, err := h.posts.GetByID(ctx, sp.PostID)
		if err != nil {
			dto.Error(c, errors.ErrDatabaseError.WithError(err))
			return
		}
		if post != nil {
			posts = append(posts, post)
		}
	}

	dto.SuccessWithPage(c, posts, dto.PageMetaFrom(page))
}
