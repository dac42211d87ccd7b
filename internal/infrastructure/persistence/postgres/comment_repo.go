// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
)

// CommentRepository 评论仓储实现
type CommentRepository struct {
	client *Client
}

// NewCommentRepository 创建评论仓储
func NewCommentRepository(client *Client) *CommentRepository {
	return &CommentRepository{client: client}
}

// Create 创建评论
func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	ctx, span := tracer.Start(ctx, "postgres.CommentRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(comment).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取评论
func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	ctx, span := tracer.Start(ctx, "postgres.CommentRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var comment entity.Comment
	if err := db.First(&comment, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

// Update 更新评论
func (r *CommentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	ctx, span := tracer.Start(ctx, "postgres.CommentRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(comment).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update comment: %w", err)
	}
	return nil
}

// Delete 删除评论及其回复
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.CommentRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Comment{}, "id = ? OR parent_id = ?", id, id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// ListByPost 获取文章评论列表
func (r *CommentRepository) ListByPost(ctx context.Context, postID string, pagination repository.Pagination) (*repository.PagedResult[*entity.Comment], error) {
	ctx, span := tracer.Start(ctx, "postgres.CommentRepository.ListByPost")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.Comment{}).Where("post_id = ?", postID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	var comments []*entity.Comment
	if err := query.Order("created_at ASC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&comments).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return repository.NewPagedResult(comments, total, pagination), nil
}

// CountByPost 统计文章评论数
func (r *CommentRepository) CountByPost(ctx context.Context, postID string) (int64, error) {
	ctx, span := tracer.Start(ctx, "postgres.CommentRepository.CountByPost")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var count int64
	if err := db.Model(&entity.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}
