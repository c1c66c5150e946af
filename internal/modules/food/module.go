package food

import (
	"pawcare-admin/internal/consts"
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/food/dto"
	"pawcare-admin/internal/modules/resource"
	platformservice "pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/storage"

	"gorm.io/gorm"
)

type Service = resource.Service[model.AnimalFood, *model.AnimalFood]

type Handler = resource.Handler[model.AnimalFood, *model.AnimalFood]

type Module struct {
	Service *Service
	Handler *Handler
}

func Options() resource.Options {
	return resource.Options{
		Name:         "Animal food",
		SearchFields: []string{"food_name", "brand", "ingredients"},
		SortFields: map[string]string{
			"createdAt": "created_at",
			"updatedAt": "updated_at",
			"name":      "food_name",
			"price":     "price_numeric",
			"stock":     "stock_quantity",
		},
		Upload: storage.Policy{Folder: "food", MaxBytes: consts.MaxImageSize, MaxFiles: 1},
	}
}

func New(appService *platformservice.AppService, db *gorm.DB, files resource.Files) *Module {
	store := resource.NewGormStore[model.AnimalFood](db, "Creator", "Updater")
	svc := resource.NewService[model.AnimalFood, *model.AnimalFood](appService, store, files, Options())
	return &Module{
		Service: svc,
		Handler: resource.NewHandler(svc, resource.HandlerOptions[*model.AnimalFood]{
			NewInput:  func() resource.Applier[*model.AnimalFood] { return &dto.FoodInput{} },
			NewFilter: func() resource.Filter { return &dto.FoodFilter{} },
			FileField: "image",
		}),
	}
}
