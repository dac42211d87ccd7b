package aigen

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
	apperrors "z-blog-ai-api/pkg/errors"
)

// stubGateway 返回固定文本或固定错误
type stubGateway struct {
	text  string
	err   error
	calls int
}

func (g *stubGateway) Complete(ctx context.Context, system, user string, opts Options) (*Completion, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return &Completion{Text: g.text, Provider: "stub", Model: "stub-model"}, nil
}

// memRecordRepo 内存审计记录仓储
type memRecordRepo struct {
	records   []*entity.GenerationRecord
	createErr error
}

func (r *memRecordRepo) Create(ctx context.Context, record *entity.GenerationRecord) error {
	if r.createErr != nil {
		return r.createErr
	}
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
	return repository.NewPagedResult(r.records, int64(len(r.records)), pagination), nil
}

func (r *memRecordRepo) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

// stubUserRepo 只实现 GetByID，其余方法不会被编排服务调用
type stubUserRepo struct {
	repository.UserRepository
	users map[string]*entity.User
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func TestService_GenerateContent(t *testing.T) {
	gateway := &stubGateway{text: "Hello world"}
	records := &memRecordRepo{}
	svc := NewService(gateway, records, &stubUserRepo{})

	result, err := svc.GenerateContent(context.Background(), &ContentRequest{
		Topic:  "分布式缓存",
		UserID: "user-1",
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if result.Content != "Hello world" {
		t.Errorf("content = %q, want %q", result.Content, "Hello world")
	}
	if result.RecordID == "" {
		t.Error("record id is empty")
	}
	if len(records.records) != 1 {
		t.Fatalf("records = %d, want 1", len(records.records))
	}

	rec := records.records[0]
	if rec.ResponseText != "Hello world" {
		t.Errorf("record response = %q", rec.ResponseText)
	}
	if rec.Topic != "分布式缓存" {
		t.Errorf("record topic = %q", rec.Topic)
	}
	if rec.Kind != entity.GenerationKindContent {
		t.Errorf("record kind = %q", rec.Kind)
	}
	if rec.RequesterID != "user-1" {
		t.Errorf("record requester = %q", rec.RequesterID)
	}
	if !strings.Contains(rec.PromptText, "分布式缓存") {
		t.Error("record prompt text missing topic")
	}
}

func TestService_GenerateContent_missingTopic(t *testing.T) {
	gateway := &stubGateway{text: "should not be called"}
	records := &memRecordRepo{}
	svc := NewService(gateway, records, &stubUserRepo{})

	_, err := svc.GenerateContent(context.Background(), &ContentRequest{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !apperrors.HasCode(err, apperrors.CodeValidationFailed) {
		t.Errorf("error code = %v, want validation failed", err)
	}
	if gateway.calls != 0 {
		t.Errorf("gateway called %d times, want 0", gateway.calls)
	}
	if len(records.records) != 0 {
		t.Errorf("records written = %d, want 0", len(records.records))
	}
}

func TestService_GenerateContent_gatewayFailure(t *testing.T) {
	gateway := &stubGateway{err: apperrors.ErrGenerationFailed.WithError(errors.New("boom"))}
	records := &memRecordRepo{}
	svc := NewService(gateway, records, &stubUserRepo{})

	_, err := svc.GenerateContent(context.Background(), &ContentRequest{Topic: "任意主题"})
	if err == nil {
		t.Fatal("expected generation error")
	}
	if len(records.records) != 0 {
		t.Errorf("failed generation wrote %d records, want 0", len(records.records))
	}
}

func TestService_GenerateContent_persistenceFailure(t *testing.T) {
	gateway := &stubGateway{text: "生成的正文"}
	records := &memRecordRepo{createErr: errors.New("insert failed")}
	svc := NewService(gateway, records, &stubUserRepo{})

	_, err := svc.GenerateContent(context.Background(), &ContentRequest{Topic: "任意主题"})
	if err == nil {
		t.Fatal("expected database error when record insert fails")
	}
	if !apperrors.HasCode(err, apperrors.CodeDatabaseError) {
		t.Errorf("error = %v, want database error code", err)
	}
}

func TestService_GenerateTitles(t *testing.T) {
	gateway := &stubGateway{text: "1. 深入浅出缓存\n2. 你也能搞懂缓存\n3. 缓存架构实战\n4. 那一夜，缓存崩了"}
	records := &memRecordRepo{}
	svc := NewService(gateway, records, &stubUserRepo{})

	result, err := svc.GenerateTitles(context.Background(), &TitleRequest{
		Content: "一篇讲分布式缓存的文章",
		UserID:  "user-2",
	})
	if err != nil {
		t.Fatalf("GenerateTitles: %v", err)
	}

	if len(result.Titles) != 4 {
		t.Fatalf("titles = %d, want 4", len(result.Titles))
	}
	if result.Titles[0] != "深入浅出缓存" {
		t.Errorf("first title = %q", result.Titles[0])
	}

	if len(records.records) != 1 {
		t.Fatalf("records = %d, want 1", len(records.records))
	}
	rec := records.records[0]
	if rec.Kind != entity.GenerationKindTitle {
		t.Errorf("record kind = %q", rec.Kind)
	}
	// 候选列表以换行拼接存储
	if rec.ResponseText != strings.Join(result.Titles, "\n") {
		t.Errorf("record response = %q", rec.ResponseText)
	}
}

func TestService_GenerateTitles_missingContent(t *testing.T) {
	gateway := &stubGateway{}
	svc := NewService(gateway, &memRecordRepo{}, &stubUserRepo{})

	for _, req := range []*TitleRequest{nil, {}, {Content: "  "}} {
		if _, err := svc.GenerateTitles(context.Background(), req); err == nil {
			t.Errorf("GenerateTitles(%+v) expected validation error", req)
		}
	}
	if gateway.calls != 0 {
		t.Errorf("gateway called %d times, want 0", gateway.calls)
	}
}

func TestService_ListGenerations_email(t *testing.T) {
	records := &memRecordRepo{records: []*entity.GenerationRecord{
		{ID: "rec-1", RequesterID: "user-1", Kind: entity.GenerationKindContent},
		{ID: "rec-2", RequesterID: "user-1", Kind: entity.GenerationKindTitle},
		{ID: "rec-3", Kind: entity.GenerationKindContent},
	}}
	users := &stubUserRepo{users: map[string]*entity.User{
		"user-1": {ID: "user-1", Email: "author@example.com"},
	}}
	svc := NewService(&stubGateway{}, records, users)

	page, err := svc.ListGenerations(context.Background(), repository.GenerationRecordFilter{}, repository.NewPagination(1, 20))
	if err != nil {
		t.Fatalf("ListGenerations: %v", err)
	}

	if len(page.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(page.Items))
	}
	if page.Items[0].RequesterEmail != "author@example.com" {
		t.Errorf("requester email = %q", page.Items[0].RequesterEmail)
	}
	if page.Items[2].RequesterEmail != "" {
		t.Errorf("anonymous record has email %q", page.Items[2].RequesterEmail)
	}
}
