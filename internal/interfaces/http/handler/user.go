package handler

import (
	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
	"z-blog-ai-api/internal/interfaces/http/dto"
	"z-blog-ai-api/pkg/errors"
	"z-blog-ai-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户处理器
type UserHandler struct {
	users    repository.UserRepository
	producer Publisher
}

// NewUserHandler 创建用户处理器
func NewUserHandler(users repository.UserRepository, producer Publisher) *UserHandler {
	return &UserHandler{users: users, producer: producer}
}

// GetByID 获取用户公开信息
// GET /v1/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
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

// UpdateProfile 更新个人资料
// PATCH /v1/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	user, err := h.users.GetByID(ctx, currentUserID(c))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if user == nil {
		dto.Error(c, errors.ErrUserNotFound)
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := h.users.Update(ctx, user); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	dto.Success(c, dto.ToUserResponse(user))
}

// ChangePassword 修改密码
// POST /v1/users/me/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	user, err := h.users.GetByID(ctx, currentUserID(c))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if user == nil {
		dto.Error(c, errors.ErrUserNotFound)
		return
	}

	if !user.CheckPassword(req.OldPassword) {
		dto.Error(c, errors.ErrUnauthorized.WithDetail("old password incorrect"))
		return
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		dto.Error(c, errors.ErrInternalError.WithError(err))
		return
	}
	if err := h.users.Update(ctx, user); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	logger.Info(ctx, "password changed", "user_id", user.ID)
	dto.NoContent(c)
}

// List 用户列表（管理员）
// GET /v1/admin/users
func (h *UserHandler) List(c *gin.Context) {
	page, err := h.users.List(c.Request.Context(), dto.BindPage(c))
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	items := make([]*dto.UserResponse, 0, len(page.Items))
	for _, u := range page.Items {
		items = append(items, dto.ToUserResponse(u))
	}

	dto.SuccessWithPage(c, items, dto.PageMetaFrom(page))
}

// UpdateRole 更新用户角色（管理员）
// PUT /v1/admin/users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	user, err := h.users.GetByID(ctx, id)
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if user == nil {
		dto.Error(c, errors.ErrUserNotFound)
		return
	}

	if err := h.users.UpdateRole(ctx, id, entity.UserRole(req.Role)); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	publishAudit(c, h.producer, "user.role_update", "user", id,
		map[string]interface{}{"role": req.Role})

	logger.Info(ctx, "user role updated", "target_user_id", id, "role", req.Role)
	dto.NoContent(c)
}

// Delete 删除用户（管理员）
// DELETE /v1/admin/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if id == currentUserID(c) {
		dto.Error(c, errors.ErrForbidden.WithDetail("cannot delete your own account"))
		return
	}

	user, err := h.users.GetByID(ctx, id)
	if err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}
	if user == nil {
		dto.Error(c, errors.ErrUserNotFound)
		return
	}

	if err := h.users.Delete(ctx, id); err != nil {
		dto.Error(c, errors.ErrDatabaseError.WithError(err))
		return
	}

	publishAudit(c, h.producer, "user.delete", "user", id, nil)

	logger.Info(ctx, "user deleted", "target_user_id", id)
	dto.NoContent(c)
}
