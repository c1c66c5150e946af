package handler

import (
	"strconv"

	"pawcare-admin/internal/modules/common/httpx"
	moduledto "pawcare-admin/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

// GetUserList lists accounts with search, role and status filters.
func (h *Handler) GetUserList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	req := moduledto.AdminUserListRequest{
		Page:      page,
		Limit:     limit,
		Search:    c.Query("search"),
		Role:      c.Query("role"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	if raw := c.Query("isActive"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			req.IsActive = &active
		}
	}

	result, err := h.userService.ListUsers(c.Request.Context(), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to fetch users")
		return
	}
	httpx.OK(c, "Users retrieved successfully", result)
}

func (h *Handler) GetUserDetail(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to fetch user")
		return
	}
	httpx.OK(c, "User retrieved successfully", gin.H{"user": user})
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req moduledto.AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to create user")
		return
	}
	httpx.Created(c, "User created successfully", gin.H{"user": user})
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	var req moduledto.AdminUserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update user")
		return
	}
	httpx.OK(c, "User updated successfully", gin.H{"user": user})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	actorID, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), actorID, id); err != nil {
		httpx.WriteServiceError(c, err, "Failed to delete user")
		return
	}
	httpx.OK(c, "User deleted successfully", nil)
}

func (h *Handler) ToggleUserStatus(c *gin.Context) {
	actorID, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.ToggleStatus(c.Request.Context(), actorID, id)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update user status")
		return
	}

	message := "User deactivated successfully"
	if user.IsActive {
		message = "User activated successfully"
	}
	httpx.OK(c, message, gin.H{"user": user})
}

func (h *Handler) ResetUserPassword(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	var req moduledto.AdminResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), id, req.NewPassword); err != nil {
		httpx.WriteServiceError(c, err, "Failed to reset password")
		return
	}
	httpx.OK(c, "Password reset successfully", nil)
}

func (h *Handler) GetUserStats(c *gin.Context) {
	stats, err := h.userService.Stats(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to fetch user statistics")
		return
	}
	httpx.OK(c, "User statistics retrieved successfully", stats)
}
