package dto

type AdminUserListRequest struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Search    string `form:"search"`
	Role      string `form:"role"`
	IsActive  *bool  `form:"isActive"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

type AdminCreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30,username"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Role     string `json:"role" binding:"omitempty,enum=role"`
	IsActive *bool  `json:"isActive"`
}

// AdminUserUpdateRequest only applies the fields that are present.
type AdminUserUpdateRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=30,username"`
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72"`
	Role     *string `json:"role" binding:"omitempty,enum=role"`
	IsActive *bool   `json:"isActive"`
}

type AdminResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6,max=72"`
}
