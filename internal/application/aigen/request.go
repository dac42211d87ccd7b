// Package aigen 实现 AI 内容生成的应用层：提示词构建、模型网关、
// 响应解析与生成编排
package aigen

// 内容生成的请求默认值
const (
	defaultAudience = "大众读者"
	defaultTone     = "专业友好"
	defaultLength   = "1000 字"
)

var defaultStructure = []string{"引言", "正文", "结语"}

// ContentRequest 内容生成请求参数
// UserID 通常由认证中间件注入，服务间调用可直接填写；
// RelatedPostID 可选，指向生成内容服务的文章
type ContentRequest struct {
	Topic         string   `json:"topic" binding:"required"`
	Audience      string   `json:"audience,omitempty"`
	Tone          string   `json:"tone,omitempty"`
	Structure     []string `json:"structure,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
	Length        string   `json:"length,omitempty"`
	UserID        string   `json:"user_id,omitempty"`
	RelatedPostID string   `json:"related_post_id,omitempty"`
}

// withDefaults 返回填充默认值后的副本，不修改原请求
func (r ContentRequest) withDefaults() ContentRequest {
	if r.Audience == "" {
		r.Audience = defaultAudience
	}
	if r.Tone == "" {
		r.Tone = defaultTone
	}
	if len(r.Structure) == 0 {
		r.Structure = defaultStructure
	}
	if r.Length == "" {
		r.Length = defaultLength
	}
	return r
}

// TitleRequest 标题生成请求参数
type TitleRequest struct {
	Content       string `json:"content" binding:"required"`
	UserID        string `json:"user_id,omitempty"`
	RelatedPostID string `json:"related_post_id,omitempty"`
}
