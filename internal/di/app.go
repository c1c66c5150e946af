package di

import (
	"pawcare-admin/internal/modules"
	"pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/router"
)

type Application struct {
	Router  *router.Router
	Modules *modules.AppModules
	Service *service.AppService
}

func NewApplication(r *router.Router, m *modules.AppModules, s *service.AppService) *Application {
	return &Application{
		Router:  r,
		Modules: m,
		Service: s,
	}
}
