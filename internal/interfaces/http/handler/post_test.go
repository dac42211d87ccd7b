package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"

	"github.com/gin-gonic/gin"
)

// detailPostRepo 文章详情用仓储桩
type detailPostRepo struct {
	repository.PostRepository
	post    *entity.Post
	likedBy string
}

func (r *detailPostRepo) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	if r.post != nil && r.post.Slug == slug {
		return r.post, nil
	}
	return nil, nil
}

func (r *detailPostRepo) HasLiked(ctx context.Context, postID, userID string) (bool, error) {
	return r.post != nil && r.post.ID == postID && r.likedBy == userID, nil
}

func (r *detailPostRepo) IncrementViews(ctx context.Context, id string) error {
	return nil
}

// countCommentRepo 评论计数桩
type countCommentRepo struct {
	repository.CommentRepository
	count int64
}

func (r *countCommentRepo) CountByPost(ctx context.Context, postID string) (int64, error) {
	return r.count, nil
}

// passThroughCache 直通缓存，总是走 loader
type passThroughCache struct{}

func (passThroughCache) GetOrLoadSafe(ctx context.Context, key string, ttl time.Duration, loader func() (interface{}, error)) ([]byte, error) {
	data, err := loader()
	if err != nil {
		return nil, err
	}
	return json.Marshal(data)
}

func (passThroughCache) InvalidatePost(ctx context.Context, slug string) error { return nil }

func (passThroughCache) InvalidatePostLists(ctx context.Context) error { return nil }

func TestGetPostDetailCommentCountAndLiked(t *testing.T) {
	gin.SetMode(gin.TestMode)

	posts := &detailPostRepo{
		post: &entity.Post{
			ID:     "post-1",
			Slug:   "go-generics",
			Title:  "Go 泛型实践",
			Status: entity.PostStatusPublished,
		},
		likedBy: "reader-1",
	}
	comments := &countCommentRepo{count: 3}
	h := NewPostHandler(posts, comments, nil, passThroughCache{}, &capturePublisher{})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "reader-1")
		c.Set("role", "user")
	})
	r.GET("/v1/posts/:id", h.GetBySlug)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/posts/go-generics", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			ID           string `json:"id"`
			CommentCount int64  `json:"comment_count"`
			Liked        bool   `json:"liked"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if resp.Data.ID != "post-1" {
		t.Errorf("expected post-1, got %s", resp.Data.ID)
	}
	if resp.Data.CommentCount != 3 {
		t.Errorf("expected comment_count 3, got %d", resp.Data.CommentCount)
	}
	if !resp.Data.Liked {
		t.Errorf("expected liked true for reader-1")
	}
}

func TestGetPostDetailNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewPostHandler(&detailPostRepo{}, &countCommentRepo{}, nil, passThroughCache{}, &capturePublisher{})

	r := gin.New()
	r.GET("/v1/posts/:id", h.GetBySlug)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/posts/missing", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
