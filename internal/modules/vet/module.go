package vet

import (
	"pawcare-admin/internal/consts"
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/resource"
	"pawcare-admin/internal/modules/vet/dto"
	platformservice "pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/storage"

	"gorm.io/gorm"
)

type Service = resource.Service[model.VetEntry, *model.VetEntry]

type Handler = resource.Handler[model.VetEntry, *model.VetEntry]

type Module struct {
	Service *Service
	Handler *Handler
}

func Options() resource.Options {
	return resource.Options{
		Name:         "Vet entry",
		SearchFields: []string{"hospital", "address", "services"},
		SortFields: map[string]string{
			"createdAt": "created_at",
			"updatedAt": "updated_at",
			"name":      "hospital",
			"rating":    "rating",
		},
		Upload: storage.Policy{Folder: "vet", MaxBytes: consts.MaxImageSize, MaxFiles: 1},
	}
}

func New(appService *platformservice.AppService, db *gorm.DB, files resource.Files) *Module {
	store := resource.NewGormStore[model.VetEntry](db, "Creator", "Updater")
	svc := resource.NewService[model.VetEntry, *model.VetEntry](appService, store, files, Options())
	return &Module{
		Service: svc,
		Handler: resource.NewHandler(svc, resource.HandlerOptions[*model.VetEntry]{
			NewInput:  func() resource.Applier[*model.VetEntry] { return &dto.VetInput{} },
			NewFilter: func() resource.Filter { return &dto.VetFilter{} },
			FileField: "image",
		}),
	}
}
