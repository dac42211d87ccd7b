// Package middleware 提供 HTTP 中间件
package middleware

import (
	"net/http"

	"z-blog-ai-api/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// Permission 权限标识
type Permission string

const (
	// PermPostWrite 发布/编辑文章
	PermPostWrite Permission = "post:write"
	// PermCommentModerate 评论管理
	PermCommentModerate Permission = "comment:moderate"
	// PermAIGenerate 调用 AI 生成接口
	PermAIGenerate Permission = "ai:generate"
	// PermAdminAccess 管理后台访问
	PermAdminAccess Permission = "admin:access"
)

// rolePermissions 角色权限映射
var rolePermissions = map[entity.UserRole][]Permission{
	entity.UserRoleAdmin: {
		PermPostWrite,
		PermCommentModerate,
		PermAIGenerate,
		PermAdminAccess,
	},
	entity.UserRoleModerator: {
		PermPostWrite,
		PermCommentModerate,
		PermAIGenerate,
	},
	entity.UserRoleUser: {
		PermPostWrite,
		PermAIGenerate,
	},
}

// HasPermission 判断角色是否拥有权限
func HasPermission(role entity.UserRole, perm Permission) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == perm {
			return true
		}
	}
	return false
}

// RequirePermission 要求指定权限
func RequirePermission(perm Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entity.UserRole(c.GetString("role"))
		if !HasPermission(role, perm) {
			abortForbidden(c, "permission denied")
			return
		}
		c.Next()
	}
}

// RequireRole 要求指定角色
func RequireRole(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entity.UserRole(c.GetString("role"))
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		abortForbidden(c, "insufficient role")
	}
}

// RequireAdmin 要求管理员角色
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(entity.UserRoleAdmin)
}

// abortForbidden 终止请求并返回 403
func abortForbidden(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"code":     403,
		"message":  msg,
		"trace_id": c.GetString("trace_id"),
	})
}
