package dto

// UpdateProfileRequest 更新个人资料请求
type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url,omitempty" binding:"omitempty,max=512"`
	Bio       *string `json:"bio,omitempty" binding:"omitempty,max=2000"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// UpdateRoleRequest 更新用户角色请求（管理员）
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin moderator user"`
}
