package dto

import (
	"z-blog-ai-api/internal/domain/repository"

	"github.com/gin-gonic/gin"
)

// PageQuery 分页查询参数
type PageQuery struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=20"`
}

// BindPage 绑定并规范化分页参数
func BindPage(c *gin.Context) repository.Pagination {
	var q PageQuery
	// 绑定失败时退回默认分页
	if err := c.ShouldBindQuery(&q); err != nil {
		return repository.NewPagination(1, 20)
	}
	return repository.NewPagination(q.Page, q.PageSize)
}
