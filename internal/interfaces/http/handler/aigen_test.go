package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"z-blog-ai-api/internal/application/aigen"
	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"

	"github.com/gin-gonic/gin"
)

// stubGateway 返回固定文本
type stubGateway struct {
	text string
}

func (g *stubGateway) Complete(ctx context.Context, system, user string, opts aigen.Options) (*aigen.Completion, error) {
	return &aigen.Completion{Text: g.text, Provider: "stub", Model: "stub-model"}, nil
}

// memRecordRepo 内存审计记录仓储
type memRecordRepo struct {
	records []*entity.GenerationRecord
}

func (r *memRecordRepo) Create(ctx context.Context, record *entity.GenerationRecord) error {
	record.ID = "rec-1"
	record.CreatedAt = time.Now()
	r.records = append(r.records, record)
	return nil
}

func (r *memRecordRepo) GetByID(ctx context.Context, id string) (*entity.GenerationRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *memRecordRepo) List(ctx context.Context, filter repository.GenerationRecordFilter, pagination repository.Pagination) (*repository.PagedResult[*entity.GenerationRecord], error) {
	items := make([]*entity.GenerationRecord, len(r.records))
	copy(items, r.records)
	return repository.NewPagedResult(items, int64(len(items)), pagination), nil
}

func (r *memRecordRepo) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

// stubUserRepo 只实现 GetByID
type stubUserRepo struct {
	repository.UserRepository
	users map[string]*entity.User
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func newTestEngine(repo *memRecordRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := aigen.NewService(
		&stubGateway{text: "生成的正文内容"},
		repo,
		&stubUserRepo{users: map[string]*entity.User{
			"user-1": {ID: "user-1", Email: "author@example.com"},
		}},
	)
	h := NewAIGenHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Set("role", "admin")
	})
	r.POST("/v1/ai/generate-content", h.GenerateContent)
	r.POST("/v1/ai/generate-title", h.GenerateTitles)
	r.GET("/v1/ai/generations", h.ListGenerations)
	return r
}

func TestGenerateContentCreated(t *testing.T) {
	repo := &memRecordRepo{}
	engine := newTestEngine(repo)

	body := `{"topic":"Go 泛型实践"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/ai/generate-content", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "生成的正文内容") {
		t.Errorf("expected generated content in response, got %s", w.Body.String())
	}

	if len(repo.records) != 1 {
		t.Fatalf("expected 1 record persisted, got %d", len(repo.records))
	}
	rec := repo.records[0]
	if rec.RequesterID != "user-1" {
		t.Errorf("expected requester user-1, got %s", rec.RequesterID)
	}
	if rec.Kind != entity.GenerationKindContent {
		t.Errorf("expected kind content, got %s", rec.Kind)
	}
}

func TestGenerateContentMissingTopic(t *testing.T) {
	repo := &memRecordRepo{}
	engine := newTestEngine(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/ai/generate-content", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(repo.records) != 0 {
		t.Errorf("expected no records for invalid request, got %d", len(repo.records))
	}
}

func TestGenerateTitlesCreated(t *testing.T) {
	repo := &memRecordRepo{}

	svc := aigen.NewService(
		&stubGateway{text: "1. 标题一\n2. 标题二\n3. 标题三\n4. 标题四"},
		repo,
		&stubUserRepo{users: map[string]*entity.User{}},
	)
	h := NewAIGenHandler(svc)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "user-1") })
	r.POST("/v1/ai/generate-title", h.GenerateTitles)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/ai/generate-title",
		strings.NewReader(`{"content":"一篇关于分布式缓存的文章正文"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Titles []string `json:"titles"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Data.Titles) != 4 {
		t.Errorf("expected 4 titles, got %d", len(resp.Data.Titles))
	}

	if len(repo.records) != 1 || repo.records[0].Kind != entity.GenerationKindTitle {
		t.Errorf("expected one title record persisted")
	}
}

func TestGenerateStoresRelatedPost(t *testing.T) {
	repo := &memRecordRepo{}
	engine := newTestEngine(repo)

	cases := []struct {
		name string
		path string
		body string
	}{
		{"content", "/v1/ai/generate-content", `{"topic":"园艺入门","related_post_id":"post-42"}`},
		{"title", "/v1/ai/generate-title", `{"content":"一篇园艺文章","related_post_id":"post-42"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			engine.ServeHTTP(w, req)

			if w.Code != http.StatusCreated {
				t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
			}

			rec := repo.records[len(repo.records)-1]
			if rec.PostID != "post-42" {
				t.Errorf("expected related post post-42 on record, got %q", rec.PostID)
			}
		})
	}
}

func TestListGenerationsWithEmail(t *testing.T) {
	repo := &memRecordRepo{}
	engine := newTestEngine(repo)

	// 先生成一条记录
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/ai/generate-content",
		strings.NewReader(`{"topic":"可观测性"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("setup: expected 201, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/ai/generations", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "author@example.com") {
		t.Errorf("expected requester email projection, got %s", w.Body.String())
	}
}

func TestListGenerationsInvalidKind(t *testing.T) {
	engine := newTestEngine(&memRecordRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/ai/generations?kind=poem", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid kind, got %d", w.Code)
	}
}
