package education

import (
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/education/dto"
	"pawcare-admin/internal/modules/education/handler"
	"pawcare-admin/internal/modules/education/repo"
	"pawcare-admin/internal/modules/resource"
	platformservice "pawcare-admin/internal/platform/service"

	"gorm.io/gorm"
)

type Service = resource.Service[model.Education, *model.Education]

type Module struct {
	Service *Service
	Handler *handler.Handler
}

func Options() resource.Options {
	return resource.Options{
		Name:         "Education entry",
		SearchFields: []string{"title", "tips", "tags"},
		SortFields: map[string]string{
			"createdAt": "created_at",
			"updatedAt": "updated_at",
			"title":     "title",
			"views":     "views",
			"likes":     "likes",
		},
		CounterFields: []string{"views", "likes"},
	}
}

// New builds the module without file storage; entries carry no images.
func New(appService *platformservice.AppService, db *gorm.DB) *Module {
	store := resource.NewGormStore[model.Education](db, "Creator", "Updater")
	svc := resource.NewService[model.Education, *model.Education](appService, store, nil, Options())
	base := resource.NewHandler(svc, resource.HandlerOptions[*model.Education]{
		NewInput:  func() resource.Applier[*model.Education] { return &dto.EducationInput{} },
		NewFilter: func() resource.Filter { return &dto.EducationFilter{} },
	})
	return &Module{
		Service: svc,
		Handler: handler.New(base, repo.NewCounterRepository(db)),
	}
}
