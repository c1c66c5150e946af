package auth

import (
	"pawcare-admin/internal/modules/auth/handler"
	"pawcare-admin/internal/modules/auth/repo"
	"pawcare-admin/internal/modules/auth/service"
	platformservice "pawcare-admin/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userStore repo.UserStore) *Module {
	moduleService := service.New(appService, userStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
