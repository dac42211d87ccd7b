package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
	"z-blog-ai-api/internal/infrastructure/messaging"
	"z-blog-ai-api/internal/infrastructure/persistence/redis"
	"z-blog-ai-api/internal/interfaces/http/dto"
	"z-blog-ai-api/pkg/errors"
	"z-blog-ai-api/pkg/logger"
	"z-blog-ai-api/pkg/metrics"
	"z-blog-ai-api/pkg/utils"
)

// 文章详情缓存时长
const postCacheTTL = 5 * time.Minute

// PostCache 文章读缓存接口，由 redis.Cache 实现
type PostCache interface {
	GetOrLoadSafe(ctx context.Context, key string, ttl time.Duration, loader func() (interface{}, error)) ([]byte, error)
	InvalidatePost(ctx context.Context, slug string) error
	InvalidatePostLists(ctx context.Context) error
}

// PostHandler 文章处理器
type PostHandler struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	tx       repository.Transactor
	cache    PostCache
	producer Publisher
}

// NewPostHandler 创建文章处理器
func NewPostHandler(posts repository.PostRepository, comments repository.CommentRepository, tx repository.Transactor, cache PostCache, producer Publisher) *PostHandler {
	return &PostHandler{
		posts:    posts,
		comments: comments,
		tx:       tx,
		cache:    cache,
		producer: producer,
	}
}

// Create 创建文章
// POST /v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	post := entity.NewPost(currentUserID(c), req.Title, req.Content)
	post.Summary = req.Summary
	post.CategoryID = req.CategoryID
	post.CoverURL = req.CoverURL
	post.Tags = pq.StringArray(req.Tags)
	post.IsAIGenerated = req.IsAIGenerated

	if req.Publish {
		post.Publish()
	}

	// slug 查重与写入放在同一事务内，避免并发创建撞 slug
	err := h.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		slug, err := h.uniqueSlug(txCtx, req.Title)
		if err != nil {
			return err
		}
		post.Slug = slug
		return h.posts.Create(txCtx, post)
	})
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	// 列表缓存失效失败只记日志
	if err := h.cache.InvalidatePostLists(ctx); err != nil {
		logger.Warn(ctx, "failed to invalidate post list cache", "error", err.Error())
	}

	logger.Info(ctx, "post created", "post_id", post.ID, "slug", post.Slug)
	dto.Created(c, post)
}

// uniqueSlug 由标题生成唯一 slug，冲突时追加短随机后缀
func (h *PostHandler) uniqueSlug(ctx context.Context, title string) (string, error) {
	slug := utils.Slugify(title)
	taken, err := h.posts.ExistsBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	if !taken {
		return slug, nil
	}
	return fmt.Sprintf("%s-%s", slug, uuid.New().String()[:8]), nil
}

// GetBySlug 获取文章详情（Read-Through 缓存），路径参数为 slug
// GET /v1/posts/:id
func (h *PostHandler) GetBySlug(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("id")

	data, err := h.cache.GetOrLoadSafe(ctx, redis.BuildPostKey(slug), postCacheTTL, func() (interface{}, error) {
		post, err := h.posts.GetBySlug(ctx, slug)
		if err != nil {
			return nil, errors.ErrDatabaseError.WithError(err)
		}
		if post == nil {
			return nil, errors.ErrPostNotFound
		}
		return post, nil
	})
	if err != nil {
		dto.Error(c, err)
		return
	}

	var post entity.Post
	if err := json.Unmarshal(data, &post); err != nil {
		dto.Error(c, errors.ErrInternalError.WithError(err))
		return
	}

	// 浏览计数异步语义：失败不影响响应
	if err := h.posts.IncrementViews(ctx, post.ID); err != nil {
		logger.Warn(ctx, "failed to increment views", "post_id", post.ID, "error", err.Error())
	} else {
		metrics.PostViewsTotal.WithLabelValues(string(post.Status)).Inc()
	}

	// 评论数与点赞状态按用户实时查询，不进缓存；失败降级为零值
	resp := &dto.PostResponse{Post: &post}
	if count, err := h.comments.CountByPost(ctx, post.ID); err != nil {
		logger.Warn(ctx, "failed to count comments", "post_id", post.ID, "error", err.Error())
	} else {
		resp.CommentCount = count
	}
	if userID := currentUserID(c); userID != "" {
		liked, err := h.posts.HasLiked(ctx, post.ID, userID)
		if err != nil {
			logger.Warn(ctx, "failed to check like status", "post_id", post.ID, "error", err.Error())
		} else {
			resp.Liked = liked
		}
	}

	dto.Success(c, resp)
}

// List 文章列表
// GET /v1/posts
func (h *PostHandler) List(c *gin.Context) {
	var q dto.PostListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	filter := repository.PostFilter{
		AuthorID:   q.AuthorID,
		CategoryID: q.CategoryID,
		Tag:        q.Tag,
		Status:     entity.PostStatus(q.Status),
		Featured:   q.Featured,
		Search:     q.Search,
	}

	// 非审核角色只能看已发布内容，本人的文章除外
	user := currentUser(c)
	if !user.CanModerate() && filter.AuthorID != user.ID {
		filter.Status = entity.PostStatusPublished
	}

	page, err := h.posts.List(c.Request.Context(), filter,
		repository.NewPagination(q.Page, q.PageSize))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	dto.SuccessWithPage(c, page.Items, dto.PageMetaFrom(page))
}

// Update 更新文章
// PUT /v1/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	post, err := h.posts.GetByID(ctx, c.Param("id"))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if post == nil {
		dto.Error(c, errors.ErrPostNotFound)
		return
	}
	if !post.CanEditBy(currentUser(c)) {
		dto.Error(c, errors.ErrForbidden)
		return
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Summary != nil {
		post.Summary = *req.Summary
	}
	if req.CategoryID != nil {
		post.CategoryID = *req.CategoryID
	}
	if req.CoverURL != nil {
		post.CoverURL = *req.CoverURL
	}
	if req.Tags != nil {
		post.Tags = pq.StringArray(req.Tags)
	}

	if err := h.posts.Update(ctx, post); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	if err := h.cache.InvalidatePost(ctx, post.Slug); err != nil {
		logger.Warn(ctx, "failed to invalidate post cache", "slug", post.Slug, "error", err.Error())
	}

	dto.Success(c, post)
}

// Publish 发布文章
// POST /v1/posts/:id/publish
func (h *PostHandler) Publish(c *gin.Context) {
	ctx := c.Request.Context()

	post, err := h.posts.GetByID(ctx, c.Param("id"))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if post == nil {
		dto.Error(c, errors.ErrPostNotFound)
		return
	}
	if !post.CanEditBy(currentUser(c)) {
		dto.Error(c, errors.ErrForbidden)
		return
	}

	post.Publish()
	if err := h.posts.Update(ctx, post); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	if err := h.cache.InvalidatePost(ctx, post.Slug); err != nil {
		logger.Warn(ctx, "failed to invalidate post cache", "slug", post.Slug, "error", err.Error())
	}

	logger.Info(ctx, "post published", "post_id", post.ID)
	dto.Success(c, post)
}

// Delete 删除文章
// DELETE /v1/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	post, err := h.posts.GetByID(ctx, c.Param("id"))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if post == nil {
		dto.Error(c, errors.ErrPostNotFound)
		return
	}
	if !post.CanEditBy(currentUser(c)) {
		dto.Error(c, errors.ErrForbidden)
		return
	}

	if err := h.posts.Delete(ctx, post.ID); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	if err := h.cache.InvalidatePost(ctx, post.Slug); err != nil {
		logger.Warn(ctx, "failed to invalidate post cache", "slug", post.Slug, "error", err.Error())
	}

	dto.NoContent(c)
}

// Like 点赞文章
// POST /v1/posts/:id/like
func (h *PostHandler) Like(c *gin.Context) {
	ctx := c.Request.Context()
	userID := currentUserID(c)

	post, err := h.posts.GetByID(ctx, c.Param("id"))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if post == nil {
		dto.Error(c, errors.ErrPostNotFound)
		return
	}

	added, err := h.posts.AddLike(ctx, post.ID, userID)
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	// 首次点赞且非自赞时通知作者，发布失败不阻断请求
	if added && post.AuthorID != userID {
		_, err := h.producer.PublishNotification(ctx, &messaging.NotificationMessage{
			EventID:     uuid.New().String(),
			Type:        string(entity.NotificationTypeLike),
			RecipientID: post.AuthorID,
			ActorID:     userID,
			PostID:      post.ID,
			Message:     fmt.Sprintf("你的文章《%s》收到了新的点赞", post.Title),
		})
		if err != nil {
			logger.Warn(ctx, "failed to publish like notification", "post_id", post.ID, "error", err.Error())
		}
	}

	dto.Success(c, gin.H{"liked": true})
}

// Unlike 取消点赞
// DELETE /v1/posts/:id/like
func (h *PostHandler) Unlike(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.posts.RemoveLike(ctx, c.Param("id"), currentUserID(c)); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	dto.Success(c, gin.H{"liked": false})
}
