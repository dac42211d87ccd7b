// Package dto 定义 HTTP 请求与响应结构
package dto

import (
	"net/http"

	"z-blog-ai-api/internal/domain/repository"
	"z-blog-ai-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response[T any] struct {
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
	Data    T                `json:"data,omitempty"`
	Meta    *PageMeta        `json:"meta,omitempty"`
	TraceID string           `json:"trace_id,omitempty"`
}

// PageMeta 分页元信息
type PageMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewPageMeta 创建分页元信息
func NewPageMeta(page, pageSize int, total int64) *PageMeta {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return &PageMeta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// PageMetaFrom 从分页结果提取元信息
func PageMetaFrom[T any](result *repository.PagedResult[T]) *PageMeta {
	return &PageMeta{
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	}
}

// Success 返回 200 成功响应
func Success[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, Response[T]{
		Code:    errors.CodeSuccess,
		Message: "success",
		Data:    data,
		TraceID: c.GetString("trace_id"),
	})
}

// SuccessWithPage 返回 200 分页响应
func SuccessWithPage[T any](c *gin.Context, data T, meta *PageMeta) {
	c.JSON(http.StatusOK, Response[T]{
		Code:    errors.CodeSuccess,
		Message: "success",
		Data:    data,
		Meta:    meta,
		TraceID: c.GetString("trace_id"),
	})
}

// Created 返回 201 创建成功响应
func Created[T any](c *gin.Context, data T) {
	c.JSON(http.StatusCreated, Response[T]{
		Code:    errors.CodeSuccess,
		Message: "created",
		Data:    data,
		TraceID: c.GetString("trace_id"),
	})
}

// NoContent 返回 204 无内容响应
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 根据错误类型返回对应的错误响应
func Error(c *gin.Context, err error) {
	appErr := errors.AsAppError(err)
	c.JSON(appErr.HTTPStatus, Response[any]{
		Code:    appErr.Code,
		Message: appErr.Message,
		Data:    errorDetail(appErr),
		TraceID: c.GetString("trace_id"),
	})
}

// errorDetail 仅在有补充信息时填充 data
func errorDetail(appErr *errors.AppError) any {
	if appErr.Detail == "" {
		return nil
	}
	return gin.H{"detail": appErr.Detail}
}

// BadRequest 返回 400 参数错误响应
func BadRequest(c *gin.Context, detail string) {
	Error(c, errors.ErrInvalidParam.WithDetail(detail))
}
