package dto

// CreateCommentRequest 创建评论请求
type CreateCommentRequest struct {
	PostID   string `json:"post_id" binding:"required,uuid"`
	ParentID string `json:"parent_id,omitempty" binding:"omitempty,uuid"`
	Content  string `json:"content" binding:"required,max=5000"`
}

// UpdateCommentRequest 编辑评论请求
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}
