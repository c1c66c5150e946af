package router

import (
	"pawcare-admin/internal/consts"
	"pawcare-admin/internal/middleware"
	educationhandler "pawcare-admin/internal/modules/education/handler"
	"pawcare-admin/internal/modules/food"
	reporthandler "pawcare-admin/internal/modules/report/handler"
	"pawcare-admin/internal/modules/rescueteam"
	"pawcare-admin/internal/modules/vet"

	"github.com/gin-gonic/gin"
)

// crudHandler is the route surface shared by every resource handler.
type crudHandler interface {
	List(c *gin.Context)
	Search(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func registerCRUD(group *gin.RouterGroup, h crudHandler) {
	group.GET("", h.List)
	group.GET("/search", h.Search)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func registerVetRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc, h *vet.Handler) {
	registerCRUD(api.Group("/vet", authRequired), h)
}

func registerRescueTeamRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc, h *rescueteam.Handler) {
	registerCRUD(api.Group("/rescue-team", authRequired), h)
}

func registerFoodRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc, h *food.Handler) {
	registerCRUD(api.Group("/animal-food", authRequired), h)
}

func registerEducationRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc, h *educationhandler.Handler) {
	group := api.Group("/education", authRequired)

	group.GET("", h.List)
	group.GET("/search", h.Search)
	group.GET("/:id", h.View)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.POST("/:id/like", h.Like)
}

// reportUploadMaxBytes fits a full set of report photos plus the JSON
// document and multipart framing.
const reportUploadMaxBytes = consts.MaxReportPhotos*consts.MaxReportPhotoSize + 1<<20

func registerReportRoutes(api *gin.RouterGroup, bodyLimit, authRequired, optionalAuth gin.HandlerFunc, h *reporthandler.Handler) {
	group := api.Group("/reports")
	photos := middleware.BodyLimitBytes(reportUploadMaxBytes)

	// anyone may file a report; a signed-in caller is recorded as reporter
	group.POST("", photos, optionalAuth, h.Create)

	group.Use(authRequired)
	group.PUT("/:id", photos, h.Update)

	triage := group.Group("", bodyLimit)
	adminOnly := middleware.RequireRole(consts.RoleAdmin)

	triage.GET("/stats", adminOnly, h.Stats)
	triage.GET("", h.List)
	triage.GET("/search", h.Search)
	triage.GET("/:id", h.Get)
	triage.DELETE("/:id", adminOnly, h.Delete)
	triage.POST("/:id/notes", h.AddNote)
	triage.PATCH("/:id/status", adminOnly, h.UpdateStatus)
}
