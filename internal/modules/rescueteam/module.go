package rescueteam

import (
	"pawcare-admin/internal/consts"
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/rescueteam/dto"
	"pawcare-admin/internal/modules/resource"
	platformservice "pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/storage"

	"gorm.io/gorm"
)

type Service = resource.Service[model.RescueTeam, *model.RescueTeam]

type Handler = resource.Handler[model.RescueTeam, *model.RescueTeam]

type Module struct {
	Service *Service
	Handler *Handler
}

func Options() resource.Options {
	return resource.Options{
		Name:         "Rescue team",
		SearchFields: []string{"team_name", "team_address", "specialization"},
		SortFields: map[string]string{
			"createdAt": "created_at",
			"updatedAt": "updated_at",
			"name":      "team_name",
			"teamSize":  "team_size",
		},
		Upload: storage.Policy{Folder: "rescue", MaxBytes: consts.MaxImageSize, MaxFiles: 1},
	}
}

func New(appService *platformservice.AppService, db *gorm.DB, files resource.Files) *Module {
	store := resource.NewGormStore[model.RescueTeam](db, "Creator", "Updater")
	svc := resource.NewService[model.RescueTeam, *model.RescueTeam](appService, store, files, Options())
	return &Module{
		Service: svc,
		Handler: resource.NewHandler(svc, resource.HandlerOptions[*model.RescueTeam]{
			NewInput:  func() resource.Applier[*model.RescueTeam] { return &dto.RescueTeamInput{} },
			NewFilter: func() resource.Filter { return &dto.RescueTeamFilter{} },
			FileField: "image",
		}),
	}
}
