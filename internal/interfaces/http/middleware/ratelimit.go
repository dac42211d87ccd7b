// Package middleware 提供 HTTP 中间件
package middleware

import (
	"context"
	"net/http"
	"time"

	"z-blog-ai-api/internal/infrastructure/persistence/redis"
	"z-blog-ai-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	// Enabled 是否启用限流
	Enabled bool
	// RequestsPerMinute 每分钟允许的请求数
	RequestsPerMinute int
}

// RateLimiter 限流器接口
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit 限流中间件
//
// 认证用户按 user_id 限流，匿名请求按客户端 IP 限流。
// 限流器故障时放行，不阻断业务。
func RateLimit(cfg RateLimitConfig, limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled || limiter == nil {
			c.Next()
			return
		}

		var key string
		if userID := c.GetString("user_id"); userID != "" {
			key = redis.BuildUserRateLimitKey(userID, c.FullPath())
		} else {
			key = redis.BuildIPRateLimitKey(c.ClientIP(), c.FullPath())
		}

		allowed, err := limiter.Allow(c.Request.Context(), key, cfg.RequestsPerMinute, time.Minute)
		if err != nil {
			// 限流器异常时放行
			logger.Warn(c.Request.Context(), "rate limiter failed, allowing request",
				"error", err.Error(),
				"key", key,
			)
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":     429,
				"message":  "too many requests",
				"trace_id": c.GetString("trace_id"),
			})
			return
		}

		c.Next()
	}
}
