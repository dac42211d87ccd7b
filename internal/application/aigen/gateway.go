package aigen

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"z-blog-ai-api/internal/infrastructure/llm"
	apperrors "z-blog-ai-api/pkg/errors"
	"z-blog-ai-api/pkg/logger"
	"z-blog-ai-api/pkg/metrics"
)

// Options 单次补全的采样参数，nil 表示使用提供商默认值
type Options struct {
	Temperature *float32
	MaxTokens   *int
}

// Completion 一次补全结果
type Completion struct {
	Text             string
	Provider         string
	Model            string
	TokensPrompt     int
	TokensCompletion int
}

// Gateway 模型网关接口，屏蔽具体 LLM 提供商
type Gateway interface {
	// Complete 执行一次 system+user 两段式补全
	Complete(ctx context.Context, system, user string, opts Options) (*Completion, error)
}

// EinoGateway 基于 Eino ChatModel 的网关实现。
// 任何失败（传输错误、空回复）都折叠为生成失败错误，不返回部分结果，
// 也不做自动重试。
type EinoGateway struct {
	factory *llm.EinoFactory
}

// NewEinoGateway 创建模型网关
func NewEinoGateway(factory *llm.EinoFactory) *EinoGateway {
	return &EinoGateway{factory: factory}
}

// Complete 执行一次补全
func (g *EinoGateway) Complete(ctx context.Context, system, user string, opts Options) (*Completion, error) {
	provider := g.factory.DefaultProvider()
	modelName := ""
	if cfg, ok := g.factory.Provider(provider); ok {
		modelName = cfg.Model
	}

	chatModel, err := g.factory.Default(ctx)
	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(provider, modelName, "error").Inc()
		return nil, apperrors.ErrGenerationFailed.WithError(err)
	}

	msgs := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	}

	modelOpts := make([]model.Option, 0, 2)
	if opts.Temperature != nil {
		modelOpts = append(modelOpts, model.WithTemperature(*opts.Temperature))
	}
	if opts.MaxTokens != nil {
		modelOpts = append(modelOpts, model.WithMaxTokens(*opts.MaxTokens))
	}

	start := time.Now()
	outMsg, err := chatModel.Generate(ctx, msgs, modelOpts...)
	duration := time.Since(start)

	metrics.LLMCallDuration.WithLabelValues(provider, modelName).Observe(duration.Seconds())

	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(provider, modelName, "error").Inc()
		logger.FromContext(ctx).Error("llm call failed",
			"provider", provider,
			"model", modelName,
			"error", err,
		)
		return nil, apperrors.ErrGenerationFailed.WithError(err)
	}

	text := ""
	if outMsg != nil {
		text = strings.TrimSpace(outMsg.Content)
	}
	if text == "" {
		metrics.LLMCallTotal.WithLabelValues(provider, modelName, "error").Inc()
		return nil, apperrors.ErrGenerationFailed.WithDetail("empty completion")
	}

	completion := &Completion{
		Text:     text,
		Provider: provider,
		Model:    modelName,
	}
	if outMsg.ResponseMeta != nil && outMsg.ResponseMeta.Usage != nil {
		completion.TokensPrompt = outMsg.ResponseMeta.Usage.PromptTokens
		completion.TokensCompletion = outMsg.ResponseMeta.Usage.CompletionTokens
		metrics.LLMTokensUsed.WithLabelValues(provider, modelName, "prompt").
			Add(float64(completion.TokensPrompt))
		metrics.LLMTokensUsed.WithLabelValues(provider, modelName, "completion").
			Add(float64(completion.TokensCompletion))
	}

	metrics.LLMCallTotal.WithLabelValues(provider, modelName, "ok").Inc()
	return completion, nil
}
