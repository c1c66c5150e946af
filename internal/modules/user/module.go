package user

import (
	"pawcare-admin/internal/modules/user/handler"
	"pawcare-admin/internal/modules/user/repo"
	"pawcare-admin/internal/modules/user/service"
	platformservice "pawcare-admin/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userStore repo.UserStore) *Module {
	moduleService := service.New(appService, userStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
