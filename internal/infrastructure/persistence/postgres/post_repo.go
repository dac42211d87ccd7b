// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
)

// PostRepository 文章仓储实现
type PostRepository struct {
	client *Client
}

// NewPostRepository 创建文章仓储
func NewPostRepository(client *Client) *PostRepository {
	return &PostRepository{client: client}
}

// Create 创建文章
func (r *PostRepository) Create(ctx context.Context, post *entity.Post) error {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(post).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取文章
func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var post entity.Post
	if err := db.First(&post, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// GetBySlug 根据 slug 获取文章
func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.GetBySlug")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var post entity.Post
	if err := db.First(&post, "slug = ?", slug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}
	return &post, nil
}

// Update 更新文章
func (r *PostRepository) Update(ctx context.Context, post *entity.Post) error {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(post).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

// Delete 删除文章
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Post{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// List 按过滤条件获取文章列表
func (r *PostRepository) List(ctx context.Context, filter repository.PostFilter, pagination repository.Pagination) (*repository.PagedResult[*entity.Post], error) {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.List")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.Post{})

	if filter.AuthorID != "" {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Tag != "" {
		query = query.Where("? = ANY(tags)", filter.Tag)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR summary ILIKE ?", pattern, pattern)
	}

	// 获取总数
	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	// 获取列表
	var posts []*entity.Post
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&posts).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return repository.NewPagedResult(posts, total, pagination), nil
}

// ExistsBySlug 检查 slug 是否已占用
func (r *PostRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.ExistsBySlug")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var count int64
	if err := db.Model(&entity.Post{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("failed to check slug exists: %w", err)
	}
	return count > 0, nil
}

// IncrementViews 浏览量加一
func (r *PostRepository) IncrementViews(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.IncrementViews")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Model(&entity.Post{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

// AddLike 点赞，重复点赞返回 false
func (r *PostRepository) AddLike(ctx context.Context, postID, userID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.AddLike")
	defer span.End()

	db := getDB(ctx, r.client.db)
	like := &entity.PostLike{PostID: postID, UserID: userID}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if result.Error != nil {
		span.RecordError(result.Error)
		return false, fmt.Errorf("failed to add like: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	if err := db.Model(&entity.Post{}).Where("id = ?", postID).
		UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("failed to update like count: %w", err)
	}
	return true, nil
}

// RemoveLike 取消点赞，未点赞返回 false
func (r *PostRepository) RemoveLike(ctx context.Context, postID, userID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.RemoveLike")
	defer span.End()

	db := getDB(ctx, r.client.db)
	result := db.Delete(&entity.PostLike{}, "post_id = ? AND user_id = ?", postID, userID)
	if result.Error != nil {
		span.RecordError(result.Error)
		return false, fmt.Errorf("failed to remove like: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	if err := db.Model(&entity.Post{}).Where("id = ? AND like_count > 0", postID).
		UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("failed to update like count: %w", err)
	}
	return true, nil
}

// HasLiked 检查用户是否已点赞
func (r *PostRepository) HasLiked(ctx context.Context, postID, userID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.HasLiked")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var count int64
	if err := db.Model(&entity.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}
