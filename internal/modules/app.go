package modules

import (
	"pawcare-admin/internal/modules/auth"
	"pawcare-admin/internal/modules/education"
	"pawcare-admin/internal/modules/food"
	"pawcare-admin/internal/modules/report"
	"pawcare-admin/internal/modules/rescueteam"
	"pawcare-admin/internal/modules/resource"
	"pawcare-admin/internal/modules/user"
	userrepo "pawcare-admin/internal/modules/user/repo"
	"pawcare-admin/internal/modules/vet"
	platformservice "pawcare-admin/internal/platform/service"

	"gorm.io/gorm"
)

type AppModules struct {
	Auth       *auth.Module
	User       *user.Module
	Vet        *vet.Module
	RescueTeam *rescueteam.Module
	Food       *food.Module
	Education  *education.Module
	Report     *report.Module
}

func New(
	appService *platformservice.AppService,
	gormDB *gorm.DB,
	userStore userrepo.UserStore,
	files resource.Files,
) *AppModules {
	return &AppModules{
		Auth:       auth.New(appService, userStore),
		User:       user.New(appService, userStore),
		Vet:        vet.New(appService, gormDB, files),
		RescueTeam: rescueteam.New(appService, gormDB, files),
		Food:       food.New(appService, gormDB, files),
		Education:  education.New(appService, gormDB),
		Report:     report.New(appService, gormDB, files),
	}
}
