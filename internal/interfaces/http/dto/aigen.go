package dto

// GenerateContentRequest 生成博客正文请求
// RelatedPostID 可选，关联生成内容服务的文章
type GenerateContentRequest struct {
	Topic         string   `json:"topic" binding:"required"`
	Audience      string   `json:"audience,omitempty"`
	Tone          string   `json:"tone,omitempty"`
	Structure     []string `json:"structure,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
	Length        string   `json:"length,omitempty"`
	RelatedPostID string   `json:"related_post_id,omitempty"`
}

// GenerateTitleRequest 生成候选标题请求
type GenerateTitleRequest struct {
	Content       string `json:"content" binding:"required"`
	RelatedPostID string `json:"related_post_id,omitempty"`
}

// GenerationListQuery 审计记录列表查询参数
type GenerationListQuery struct {
	PageQuery
	RequesterID string `form:"requester_id"`
	Kind        string `form:"kind"`
}
