package router

import (
	authhandler "pawcare-admin/internal/modules/auth/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc, h *authhandler.Handler) {
	authGroup := api.Group("/auth")

	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)

	authGroup.POST("/logout", authRequired, h.Logout)
	authGroup.GET("/me", authRequired, h.Me)
	authGroup.PUT("/change-password", authRequired, h.ChangePassword)
}
