// Package router 提供 HTTP 路由配置
package router

import (
	"z-blog-ai-api/internal/config"
	"z-blog-ai-api/internal/interfaces/http/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(v1 *gin.RouterGroup, cfg *config.Config, h *Handlers, rateLimiter middleware.RateLimiter) {
	// 认证管理
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.GET("/me", h.Auth.Me)
	}

	// 用户管理
	users := v1.Group("/users")
	{
		users.PATCH("/me", h.User.UpdateProfile)
		users.POST("/me/password", h.User.ChangePassword)
		users.GET("/:id", h.User.GetByID)
	}

	// 文章管理
	posts := v1.Group("/posts")
	{
		posts.GET("", h.Post.List)
		posts.POST("", h.Post.Create)
		posts.GET("/:id", h.Post.GetBySlug) // :id 为 slug
		posts.PUT("/:id", h.Post.Update)
		posts.DELETE("/:id", h.Post.Delete)
		posts.POST("/:id/publish", h.Post.Publish)

		posts.POST("/:id/like", h.Post.Like)
		posts.DELETE("/:id/like", h.Post.Unlike)

		posts.POST("/:id/save", h.SavedPost.Save)
		posts.DELETE("/:id/save", h.SavedPost.Unsave)

		posts.GET("/:id/comments", h.Comment.ListByPost)
	}

	// 评论管理
	comments := v1.Group("/comments")
	{
		comments.POST("", h.Comment.Create)
		comments.PUT("/:id", h.Comment.Update)
		comments.DELETE("/:id", h.Comment.Delete)
	}

	// 分类
	categories := v1.Group("/categories")
	{
		categories.GET("", h.Category.ListAll)
		categories.GET("/:slug", h.Category.GetBySlug)
	}

	// 收藏
	saved := v1.Group("/saved-posts")
	{
		saved.GET("", h.SavedPost.ListMine)
	}

	// 通知
	notifications := v1.Group("/notifications")
	{
		notifications.GET("", h.Notification.ListMine)
		notifications.GET("/unread-count", h.Notification.UnreadCount)
		notifications.POST("/:id/read", h.Notification.MarkRead)
		notifications.POST("/read-all", h.Notification.MarkAllRead)
	}

	// AI 生成，生成接口按用户限流
	ai := v1.Group("/ai")
	{
		rateLimit := middleware.RateLimit(middleware.RateLimitConfig{
			Enabled:           cfg.Security.RateLimit.Enabled,
			RequestsPerMinute: cfg.Security.RateLimit.RequestsPerMinute,
		}, rateLimiter)

		ai.POST("/generate-content", rateLimit, h.AIGen.GenerateContent)
		ai.POST("/generate-title", rateLimit, h.AIGen.GenerateTitles)
		ai.GET("/generations", middleware.RequireAdmin(), h.AIGen.ListGenerations)
	}

	// 管理后台
	admin := v1.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/dashboard", h.Admin.Dashboard)
		admin.GET("/users", h.User.List)
		admin.PUT("/users/:id/role", h.User.UpdateRole)
		admin.DELETE("/users/:id", h.User.Delete)

		admin.POST("/categories", h.Category.Create)
		admin.PUT("/categories/:id", h.Category.Update)
		admin.DELETE("/categories/:id", h.Category.Delete)

		admin.POST("/generations/purge", h.Admin.PurgeGenerations)
		admin.GET("/audit-logs", h.Admin.AuditLogs)
	}
}
