package dto

// DashboardResponse 管理后台概览
type DashboardResponse struct {
	UserCount       int64 `json:"user_count"`
	PostCount       int64 `json:"post_count"`
	PublishedCount  int64 `json:"published_count"`
	GenerationCount int64 `json:"generation_count"`
}

// PurgeGenerationsRequest 清理审计记录请求
type PurgeGenerationsRequest struct {
	// Before 删除该时间之前的记录，RFC3339 格式
	Before string `json:"before" binding:"required"`
}

// PurgeGenerationsResponse 清理结果
type PurgeGenerationsResponse struct {
	Deleted int64 `json:"deleted"`
}
