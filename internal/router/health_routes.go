package router

import (
	"net/http"
	"strings"
	"time"

	"pawcare-admin/internal/config"
	"pawcare-admin/internal/middleware"
	"pawcare-admin/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func registerHealthRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, healthResponse{
			Status:    "OK",
			Message:   "Server is running",
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
}

// registerUploadRoutes serves stored files when they live on local disk.
func registerUploadRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.Upload.Driver != "" && cfg.Upload.Driver != "local" {
		return
	}
	prefix := "/" + strings.Trim(cfg.Upload.URLPrefix, "/")
	if prefix == "/" {
		return
	}
	r.Group(prefix, middleware.StaticCache(cfg.Server.StaticCacheControl)).
		StaticFS("", gin.Dir(cfg.Upload.Path, false))
}

func notFound(c *gin.Context) {
	httpx.Fail(c, http.StatusNotFound, "Route not found", nil)
}
