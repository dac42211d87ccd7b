package aigen

import (
	"fmt"
	"strings"

	apperrors "z-blog-ai-api/pkg/errors"
)

const contentSystemPrompt = `你是一位资深的博客写作助手，擅长根据给定的主题和写作要求创作结构完整、行文流畅的中文博客文章。
请严格按照给定的结构组织内容，自然地融入关键词，语气贴合目标读者，直接输出正文，不要输出任何解释或前言。`

const titleSystemPrompt = `你是一位博客标题策划师。请为给定的内容生成恰好 4 个候选标题，要求：
1. 每行一个，按 "1. " "2. " "3. " "4. " 编号输出；
2. 每个标题不超过 55 个字符；
3. 四个标题分别采用四种风格：学术、励志、专业、叙事；
4. 直接输出编号列表，不要任何前言、解释或额外文字。`

// BuildContentPrompt 构建内容生成提示词，返回 system 与 user 两段文本。
// 纯函数，不修改请求本身，缺少主题时返回校验错误。
func BuildContentPrompt(req *ContentRequest) (string, string, error) {
	if req == nil || strings.TrimSpace(req.Topic) == "" {
		return "", "", apperrors.ErrValidationFailed.WithDetail("topic is required")
	}

	r := req.withDefaults()

	keywords := "无"
	if len(r.Keywords) > 0 {
		keywords = strings.Join(r.Keywords, "、")
	}

	user := fmt.Sprintf(`请围绕以下要求撰写一篇博客文章：
主题：%s
目标读者：%s
语气风格：%s
文章结构：%s
必须包含的关键词：%s
篇幅要求：%s`,
		strings.TrimSpace(r.Topic),
		r.Audience,
		r.Tone,
		strings.Join(r.Structure, "、"),
		keywords,
		r.Length,
	)

	return contentSystemPrompt, user, nil
}

// BuildTitlePrompt 构建标题生成提示词，source 为文章内容或主题描述
func BuildTitlePrompt(source string) (string, string, error) {
	if strings.TrimSpace(source) == "" {
		return "", "", apperrors.ErrValidationFailed.WithDetail("content is required")
	}

	user := fmt.Sprintf("内容：%s", strings.TrimSpace(source))
	return titleSystemPrompt, user, nil
}
