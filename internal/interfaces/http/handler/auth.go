package handler

import (
	"z-blog-ai-api/internal/config"
	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
	"z-blog-ai-api/internal/interfaces/http/dto"
	"z-blog-ai-api/pkg/errors"
	"z-blog-ai-api/pkg/logger"
	"z-blog-ai-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	users      repository.UserRepository
	jwtManager *utils.JWTManager
	jwtConfig  config.JWTConfig
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(users repository.UserRepository, jwtManager *utils.JWTManager, jwtConfig config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtManager: jwtManager,
		jwtConfig:  jwtConfig,
	}
}

// Register 用户注册
// POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	exists, err := h.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if exists {
		dto.Error(c, errors.ErrConflict.WithDetail("email already registered"))
		return
	}

	user := entity.NewUser(req.Email, req.Name)
	if err := user.SetPassword(req.Password); err != nil {
		dto.Error(c, errors.ErrInternalError.WithError(err))
		return
	}

	if err := h.users.Create(ctx, user); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	pair, err := h.jwtManager.GenerateTokenPair(user.ID, string(user.Role),
		h.jwtConfig.Expiration, h.jwtConfig.RefreshExpiration)
	if err != nil {
		dto.Error(c, errors.ErrInternalError.WithError(err))
		return
	}

	logger.Info(ctx, "user registered", "user_id", user.ID)

	dto.Created(c, &dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int64(h.jwtConfig.Expiration.Seconds()),
		User:         dto.ToUserResponse(user),
	})
}

// Login 用户登录
// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	user, err := h.users.GetByEmail(ctx, req.Email)
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if user == nil || !user.CheckPassword(req.Password) {
		dto.Error(c, errors.ErrUnauthorized.WithDetail("invalid email or password"))
		return
	}

	// 登录时间更新失败不阻断登录
	if err := h.users.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn(ctx, "failed to update last login", "user_id", user.ID, "error", err.Error())
	}

	pair, err := h.jwtManager.GenerateTokenPair(user.ID, string(user.Role),
		h.jwtConfig.Expiration, h.jwtConfig.RefreshExpiration)
	if err != nil {
		dto.Error(c, errors.ErrInternalError.WithError(err))
		return
	}

	dto.Success(c, &dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int64(h.jwtConfig.Expiration.Seconds()),
		User:         dto.ToUserResponse(user),
	})
}

// Refresh 刷新令牌
// POST /v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	claims, err := h.jwtManager.ParseToken(req.RefreshToken)
	if err != nil {
		if err == utils.ErrExpiredToken {
			dto.Error(c, errors.ErrTokenExpired)
			return
		}
		dto.Error(c, errors.ErrTokenInvalid)
		return
	}
	if claims.Type != "refresh" {
		dto.Error(c, errors.ErrTokenInvalid.WithDetail("refresh token required"))
		return
	}

	// 重新读取用户，角色变更后立即生效
	user, err := h.users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if user == nil {
		dto.Error(c, errors.ErrUnauthorized.WithDetail("user no longer exists"))
		return
	}

	pair, err := h.jwtManager.GenerateTokenPair(user.ID, string(user.Role),
		h.jwtConfig.Expiration, h.jwtConfig.RefreshExpiration)
	if err != nil {
		dto.Error(c, errors.ErrInternalError.WithError(err))
		return
	}

	dto.Success(c, &dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int64(h.jwtConfig.Expiration.Seconds()),
	})
}

// Me 获取当前用户信息
// GET /v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if user == nil {
		dto.Error(c, errors.ErrUserNotFound)
		return
	}
	dto.Success(c, dto.ToUserResponse(user))
}
