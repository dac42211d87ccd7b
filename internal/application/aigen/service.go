package aigen

import (
	"context"
	"strings"
	"time"

	"github.com/lib/pq"

	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
	apperrors "z-blog-ai-api/pkg/errors"
	"z-blog-ai-api/pkg/logger"
	"z-blog-ai-api/pkg/metrics"
)

// 采样参数按生成类型固定
const (
	contentTemperature = float32(0.7)
	contentMaxTokens   = 2000
	titleMaxTokens     = 150
)

// ContentResult 内容生成结果
type ContentResult struct {
	RecordID string `json:"record_id"`
	Content  string `json:"content"`
	Model    string `json:"model"`
}

// TitleResult 标题生成结果
type TitleResult struct {
	RecordID string   `json:"record_id"`
	Titles   []string `json:"titles"`
	Model    string   `json:"model"`
}

// GenerationItem 审计记录及请求者邮箱投影
type GenerationItem struct {
	*entity.GenerationRecord
	RequesterEmail string `json:"requester_email,omitempty"`
}

// Service AI 生成编排服务
type Service struct {
	gateway Gateway
	records repository.GenerationRecordRepository
	users   repository.UserRepository
}

// NewService 创建生成编排服务
func NewService(gateway Gateway, records repository.GenerationRecordRepository, users repository.UserRepository) *Service {
	return &Service{
		gateway: gateway,
		records: records,
		users:   users,
	}
}

// GenerateContent 生成博客正文：构建提示词 -> 调用模型 -> 写入审计记录。
// 模型调用失败不写记录；审计写入失败则整个请求失败。
func (s *Service) GenerateContent(ctx context.Context, req *ContentRequest) (*ContentResult, error) {
	system, user, err := BuildContentPrompt(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	temp := contentTemperature
	maxTokens := contentMaxTokens
	completion, err := s.gateway.Complete(ctx, system, user, Options{
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		metrics.GenerationTotal.WithLabelValues(string(entity.GenerationKindContent), "error").Inc()
		return nil, err
	}

	r := req.withDefaults()
	record := &entity.GenerationRecord{
		RequesterID:      req.UserID,
		PostID:           req.RelatedPostID,
		Kind:             entity.GenerationKindContent,
		Topic:            strings.TrimSpace(r.Topic),
		Tone:             r.Tone,
		Structure:        pq.StringArray(r.Structure),
		Length:           r.Length,
		Keywords:         pq.StringArray(r.Keywords),
		PromptText:       system + "\n\n" + user,
		ResponseText:     completion.Text,
		Provider:         completion.Provider,
		ModelUsed:        completion.Model,
		TokensPrompt:     completion.TokensPrompt,
		TokensCompletion: completion.TokensCompletion,
		DurationMs:       int(time.Since(start).Milliseconds()),
	}

	if err := s.appendRecord(ctx, record); err != nil {
		metrics.GenerationTotal.WithLabelValues(string(entity.GenerationKindContent), "error").Inc()
		return nil, err
	}

	metrics.GenerationTotal.WithLabelValues(string(entity.GenerationKindContent), "ok").Inc()
	metrics.GenerationDuration.WithLabelValues(string(entity.GenerationKindContent)).
		Observe(time.Since(start).Seconds())

	return &ContentResult{
		RecordID: record.ID,
		Content:  completion.Text,
		Model:    completion.Model,
	}, nil
}

// GenerateTitles 生成候选标题：构建提示词 -> 调用模型 -> 解析编号列表 ->
// 以换行拼接后写入审计记录，返回解析后的候选列表。
func (s *Service) GenerateTitles(ctx context.Context, req *TitleRequest) (*TitleResult, error) {
	if req == nil {
		return nil, apperrors.ErrValidationFailed.WithDetail("content is required")
	}

	system, user, err := BuildTitlePrompt(req.Content)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	temp := contentTemperature
	maxTokens := titleMaxTokens
	completion, err := s.gateway.Complete(ctx, system, user, Options{
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		metrics.GenerationTotal.WithLabelValues(string(entity.GenerationKindTitle), "error").Inc()
		return nil, err
	}

	titles := ParseNumberedList(completion.Text)

	record := &entity.GenerationRecord{
		RequesterID:      req.UserID,
		PostID:           req.RelatedPostID,
		Kind:             entity.GenerationKindTitle,
		Topic:            truncate(strings.TrimSpace(req.Content), 255),
		PromptText:       system + "\n\n" + user,
		ResponseText:     strings.Join(titles, "\n"),
		Provider:         completion.Provider,
		ModelUsed:        completion.Model,
		TokensPrompt:     completion.TokensPrompt,
		TokensCompletion: completion.TokensCompletion,
		DurationMs:       int(time.Since(start).Milliseconds()),
	}

	if err := s.appendRecord(ctx, record); err != nil {
		metrics.GenerationTotal.WithLabelValues(string(entity.GenerationKindTitle), "error").Inc()
		return nil, err
	}

	metrics.GenerationTotal.WithLabelValues(string(entity.GenerationKindTitle), "ok").Inc()
	metrics.GenerationDuration.WithLabelValues(string(entity.GenerationKindTitle)).
		Observe(time.Since(start).Seconds())

	return &TitleResult{
		RecordID: record.ID,
		Titles:   titles,
		Model:    completion.Model,
	}, nil
}

// appendRecord 持久化审计记录，失败时保留生成文本到日志便于人工找回
func (s *Service) appendRecord(ctx context.Context, record *entity.GenerationRecord) error {
	if err := s.records.Create(ctx, record); err != nil {
		logger.FromContext(ctx).Error("failed to persist generation record, generated text follows",
			"kind", record.Kind,
			"topic", record.Topic,
			"response_text", record.ResponseText,
			"error", err,
		)
		return apperrors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// ListGenerations 管理端审计记录列表，按创建时间倒序，附带请求者邮箱
func (s *Service) ListGenerations(ctx context.Context, filter repository.GenerationRecordFilter, pagination repository.Pagination) (*repository.PagedResult[*GenerationItem], error) {
	page, err := s.records.List(ctx, filter, pagination)
	if err != nil {
		return nil, apperrors.ErrDatabaseError.WithError(err)
	}

	// 同页请求者去重后查询邮箱
	emails := make(map[string]string)
	items := make([]*GenerationItem, 0, len(page.Items))
	for _, record := range page.Items {
		item := &GenerationItem{GenerationRecord: record}
		if record.RequesterID != "" {
			email, ok := emails[record.RequesterID]
			if !ok {
				if u, uerr := s.users.GetByID(ctx, record.RequesterID); uerr == nil && u != nil {
					email = u.Email
				}
				emails[record.RequesterID] = email
			}
			item.RequesterEmail = email
		}
		items = append(items, item)
	}

	return &repository.PagedResult[*GenerationItem]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// PurgeGenerations 清理早于 before 的审计记录，返回删除条数
func (s *Service) PurgeGenerations(ctx context.Context, before time.Time) (int64, error) {
	deleted, err := s.records.DeleteOlderThan(ctx, before)
	if err != nil {
		return 0, apperrors.ErrDatabaseError.WithError(err)
	}
	return deleted, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
