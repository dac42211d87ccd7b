// Package entity 定义领域实体
package entity

import (
	"time"

	"github.com/lib/pq"
)

// GenerationKind 生成内容类型
type GenerationKind string

const (
	GenerationKindTitle   GenerationKind = "title"
	GenerationKindOutline GenerationKind = "outline"
	GenerationKindContent GenerationKind = "content"
	GenerationKindSummary GenerationKind = "summary"
	GenerationKindCustom  GenerationKind = "custom"
)

// IsValid 检查生成类型是否合法
func (k GenerationKind) IsValid() bool {
	switch k {
	case GenerationKindTitle, GenerationKindOutline, GenerationKindContent,
		GenerationKindSummary, GenerationKindCustom:
		return true
	}
	return false
}

// GenerationRecord AI 生成审计记录
// 记录一次成功生成的请求快照、完整提示词与模型回复
type GenerationRecord struct {
	ID               string         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequesterID      string         `json:"requester_id,omitempty" gorm:"type:uuid;index"`
	PostID           string         `json:"post_id,omitempty" gorm:"type:uuid;index"`
	Kind             GenerationKind `json:"kind" gorm:"type:varchar(20);default:'content';index"`
	Topic            string         `json:"topic" gorm:"type:varchar(255);not null"`
	Tone             string         `json:"tone,omitempty" gorm:"type:varchar(100)"`
	Structure        pq.StringArray `json:"structure,omitempty" gorm:"type:text[]"`
	Length           string         `json:"length,omitempty" gorm:"type:varchar(50)"`
	Keywords         pq.StringArray `json:"keywords,omitempty" gorm:"type:text[]"`
	PromptText       string         `json:"prompt_text" gorm:"type:text;not null"`
	ResponseText     string         `json:"response_text" gorm:"type:text;not null"`
	Provider         string         `json:"provider,omitempty" gorm:"type:varchar(32)"`
	ModelUsed        string         `json:"model_used" gorm:"type:varchar(64);not null"`
	TokensPrompt     int            `json:"tokens_prompt" gorm:"default:0"`
	TokensCompletion int            `json:"tokens_completion" gorm:"default:0"`
	DurationMs       int            `json:"duration_ms" gorm:"default:0"`
	CreatedAt        time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName 指定表名
func (GenerationRecord) TableName() string {
	return "generation_records"
}
