// Package handler 实现 HTTP 请求处理
package handler

import (
	"z-blog-ai-api/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// currentUserID 获取当前认证用户 ID
func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

// currentUser 根据认证上下文构建轻量用户，用于权限判断
func currentUser(c *gin.Context) *entity.User {
	return &entity.User{
		ID:   c.GetString("user_id"),
		Role: entity.UserRole(c.GetString("role")),
	}
}
