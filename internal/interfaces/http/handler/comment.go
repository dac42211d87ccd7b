package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
	"z-blog-ai-api/internal/infrastructure/messaging"
	"z-blog-ai-api/internal/interfaces/http/dto"
	"z-blog-ai-api/pkg/errors"
	"z-blog-ai-api/pkg/logger"
)

// CommentHandler 评论处理器
type CommentHandler struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	producer Publisher
}

// NewCommentHandler 创建评论处理器
func NewCommentHandler(comments repository.CommentRepository, posts repository.PostRepository, producer Publisher) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		posts:    posts,
		producer: producer,
	}
}

// Create 发表评论或回复
// POST /v1/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	userID := currentUserID(c)

	post, err := h.posts.GetByID(ctx, req.PostID)
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if post == nil {
		dto.Error(c, errors.ErrPostNotFound)
		return
	}

	comment := entity.NewComment(req.PostID, userID, req.Content)

	var parent *entity.Comment
	if req.ParentID != "" {
		parent, err = h.comments.GetByID(ctx, req.ParentID)
		if err != nil {
			dto.Error(c, errors.ErrDatabaseError.WithError(err))
			return
		}
		if parent == nil || parent.PostID != req.PostID {
			dto.Error(c, errors.ErrCommentNotFound.WithDetail("parent comment not found in this post"))
			return
		}
		comment.ParentID = &req.ParentID
	}

	if err := h.comments.Create(ctx, comment); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	h.notify(c, post, comment, parent)

	dto.Created(c, comment)
}

// notify 向文章作者或被回复者发布通知事件，失败只记日志
func (h *CommentHandler) notify(c *gin.Context, post *entity.Post, comment *entity.Comment, parent *entity.Comment) {
	ctx := c.Request.Context()

	event := &messaging.NotificationMessage{
		EventID:   uuid.New().String(),
		ActorID:   comment.AuthorID,
		PostID:    post.ID,
		CommentID: comment.ID,
	}

	if parent != nil {
		event.Type = string(entity.NotificationTypeReply)
		event.RecipientID = parent.AuthorID
		event.Message = fmt.Sprintf("你在《%s》下的评论收到了新回复", post.Title)
	} else {
		event.Type = string(entity.NotificationTypeComment)
		event.RecipientID = post.AuthorID
		event.Message = fmt.Sprintf("你的文章《%s》收到了新评论", post.Title)
	}

	// 不给自己发通知
	if event.RecipientID == comment.AuthorID {
		return
	}

	if _, err := h.producer.PublishNotification(ctx, event); err != nil {
		logger.Warn(ctx, "failed to publish comment notification",
			"comment_id", comment.ID, "error", err.Error())
	}
}

// ListByPost 获取文章评论列表
// GET /v1/posts/:id/comments
func (h *CommentHandler) ListByPost(c *gin.Context) {
	page, err := h.comments.ListByPost(c.Request.Context(), c.Param("id"), dto.BindPage(c))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	dto.SuccessWithPage(c, page.Items, dto.PageMetaFrom(page))
}

// Update 编辑评论
// PUT /v1/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	comment, err := h.comments.GetByID(ctx, c.Param("id"))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if comment == nil {
		dto.Error(c, errors.ErrCommentNotFound)
		return
	}
	if comment.AuthorID != currentUserID(c) {
		dto.Error(c, errors.ErrForbidden)
		return
	}

	comment.Edit(req.Content)
	if err := h.comments.Update(ctx, comment); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	dto.Success(c, comment)
}

// Delete 删除评论（作者或审核角色）
// DELETE /v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	comment, err := h.comments.GetByID(ctx, c.Param("id"))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if comment == nil {
		dto.Error(c, errors.ErrCommentNotFound)
		return
	}

	user := currentUser(c)
	if comment.AuthorID != user.ID && !user.CanModerate() {
		dto.Error(c, errors.ErrForbidden)
		return
	}

	if err := h.comments.Delete(ctx, comment.ID); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	dto.NoContent(c)
}
