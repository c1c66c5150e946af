package router

import (
	"net/http"

	"pawcare-admin/internal/middleware"
	"pawcare-admin/internal/modules"
	"pawcare-admin/internal/platform/redisclient"
	"pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

type Router struct {
	modules *modules.AppModules
	service *service.AppService
	redis   *redisclient.Client
}

// NewRouter wires routes for appModules. rdb may be nil.
func NewRouter(appModules *modules.AppModules, appService *service.AppService, rdb *redisclient.Client) *Router {
	return &Router{
		modules: appModules,
		service: appService,
		redis:   rdb,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	cfg := rt.service.Config()
	utils.RegisterGinValidations()

	r.Use(middleware.RequestLogger(rt.service.Logger()))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())

	registerHealthRoutes(r)
	registerUploadRoutes(r, cfg)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimit, rt.redis, rt.service.Logger()))

	// body limits are per group: report uploads need more than the default
	bodyLimit := middleware.BodyLimit(cfg.Server.MaxBodyMB)
	limited := api.Group("", bodyLimit)

	authRequired := middleware.Authenticate(rt.modules.Auth.Service)
	optionalAuth := middleware.OptionalAuth(rt.modules.Auth.Service)

	registerAuthRoutes(limited, authRequired, rt.modules.Auth.Handler)
	registerAdminRoutes(limited, authRequired, rt.modules.User.Handler)
	registerVetRoutes(limited, authRequired, rt.modules.Vet.Handler)
	registerRescueTeamRoutes(limited, authRequired, rt.modules.RescueTeam.Handler)
	registerFoodRoutes(limited, authRequired, rt.modules.Food.Handler)
	registerEducationRoutes(limited, authRequired, rt.modules.Education.Handler)
	registerReportRoutes(api, bodyLimit, authRequired, optionalAuth, rt.modules.Report.Handler)

	r.NoRoute(notFound)
}

// Handler wraps the engine with the configured CORS policy.
func (rt *Router) Handler(r *gin.Engine) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   rt.service.Config().Server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
