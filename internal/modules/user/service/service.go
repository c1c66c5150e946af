package service

import (
	"pawcare-admin/internal/modules/user/repo"
	platformservice "pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/utils"
)

type Service struct {
	*platformservice.AppService
	userStore repo.UserStore
	hasher    *utils.PasswordHasher
}

func New(appService *platformservice.AppService, userStore repo.UserStore) *Service {
	return &Service{
		AppService: appService,
		userStore:  userStore,
		hasher:     utils.NewPasswordHasher(appService.Config().Security),
	}
}
