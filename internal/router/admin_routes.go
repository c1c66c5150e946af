package router

import (
	"pawcare-admin/internal/consts"
	"pawcare-admin/internal/middleware"
	userhandler "pawcare-admin/internal/modules/user/handler"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc, h *userhandler.Handler) {
	adminGroup := api.Group("/auth")
	adminGroup.Use(authRequired)
	adminGroup.Use(middleware.RequireRole(consts.RoleAdmin))

	adminGroup.GET("/stats", h.GetUserStats)

	adminGroup.GET("/users", h.GetUserList)
	adminGroup.GET("/users/:id", h.GetUserDetail)
	adminGroup.POST("/users", h.CreateUser)
	adminGroup.PUT("/users/:id", h.UpdateUser)
	adminGroup.DELETE("/users/:id", h.DeleteUser)
	adminGroup.PATCH("/users/:id/toggle-status", h.ToggleUserStatus)
	adminGroup.PATCH("/users/:id/reset-password", h.ResetUserPassword)
}
