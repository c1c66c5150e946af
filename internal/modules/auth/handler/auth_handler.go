package handler

import (
	moduledto "pawcare-admin/internal/modules/auth/dto"
	authservice "pawcare-admin/internal/modules/auth/service"
	"pawcare-admin/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	result, err := h.authService.Authenticate(c.Request.Context(), req.Identifier(), req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "Login failed")
		return
	}

	httpx.OK(c, "Login successful", result)
}

func (h *Handler) Register(c *gin.Context) {
	var req moduledto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), authservice.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "Registration failed")
		return
	}

	httpx.Created(c, "User registered successfully", result)
}

// Me returns the current account.
func (h *Handler) Me(c *gin.Context) {
	uid, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.Me(c.Request.Context(), uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load profile")
		return
	}

	httpx.OK(c, "Profile retrieved successfully", gin.H{"user": user})
}

func (h *Handler) ChangePassword(c *gin.Context) {
	uid, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}

	var req moduledto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), uid, req.CurrentPassword, req.NewPassword); err != nil {
		httpx.WriteServiceError(c, err, "Failed to change password")
		return
	}

	httpx.OK(c, "Password changed successfully", nil)
}

// Logout only acknowledges: tokens are stateless and discarded by the client.
func (h *Handler) Logout(c *gin.Context) {
	httpx.OK(c, "Logged out successfully", nil)
}
