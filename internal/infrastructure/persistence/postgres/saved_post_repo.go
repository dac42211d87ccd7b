// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
)

// SavedPostRepository 收藏仓储实现
type SavedPostRepository struct {
	client *Client
}

// NewSavedPostRepository 创建收藏仓储
func NewSavedPostRepository(client *Client) *SavedPostRepository {
	return &SavedPostRepository{client: client}
}

// Save 收藏文章，重复收藏返回 false
func (r *SavedPostRepository) Save(ctx context.Context, userID, postID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "postgres.SavedPostRepository.Save")
	defer span.End()

	db := getDB(ctx, r.client.db)
	saved := &entity.SavedPost{UserID: userID, PostID: postID}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(saved)
	if result.Error != nil {
		span.RecordError(result.Error)
		return false, fmt.Errorf("failed to save post: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Unsave 取消收藏，未收藏返回 false
func (r *SavedPostRepository) Unsave(ctx context.Context, userID, postID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "postgres.SavedPostRepository.Unsave")
	defer span.End()

	db := getDB(ctx, r.client.db)
	result := db.Delete(&entity.SavedPost{}, "user_id = ? AND post_id = ?", userID, postID)
	if result.Error != nil {
		span.RecordError(result.Error)
		return false, fmt.Errorf("failed to unsave post: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// IsSaved 检查是否已收藏
func (r *SavedPostRepository) IsSaved(ctx context.Context, userID, postID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "postgres.SavedPostRepository.IsSaved")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var count int64
	if err := db.Model(&entity.SavedPost{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("failed to check saved: %w", err)
	}
	return count > 0, nil
}

// ListByUser 获取用户收藏列表
func (r *SavedPostRepository) ListByUser(ctx context.Context, userID string, pagination repository.Pagination) (*repository.PagedResult[*entity.SavedPost], error) {
	ctx, span := tracer.Start(ctx, "postgres.SavedPostRepository.ListByUser")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.SavedPost{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count saved posts: %w", err)
	}

	var saved []*entity.SavedPost
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&saved).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list saved posts: %w", err)
	}

	return repository.NewPagedResult(saved, total, pagination), nil
}
