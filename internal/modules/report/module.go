package report

import (
	"pawcare-admin/internal/consts"
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/report/dto"
	"pawcare-admin/internal/modules/report/handler"
	"pawcare-admin/internal/modules/report/repo"
	"pawcare-admin/internal/modules/report/service"
	"pawcare-admin/internal/modules/resource"
	platformservice "pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/storage"

	"gorm.io/gorm"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func Options() resource.Options {
	return resource.Options{
		Name:         "Report",
		SearchFields: []string{"animal_type", "location", "description"},
		SortFields: map[string]string{
			"createdAt":  "created_at",
			"updatedAt":  "updated_at",
			"reportedAt": "reported_at",
			"priority":   "priority",
			"status":     "status",
		},
		DefaultSort: resource.Sort{Field: "reported_at", Desc: true},
		SoftDelete:  true,
		Upload: storage.Policy{
			Folder:   "reports",
			MaxBytes: consts.MaxReportPhotoSize,
			MaxFiles: consts.MaxReportPhotos,
		},
	}
}

func New(appService *platformservice.AppService, db *gorm.DB, files resource.Files) *Module {
	store := resource.NewGormStore[model.Report](db, "Reporter", "Assignee", "Updater", "Notes", "Notes.Author")
	resources := resource.NewService[model.Report, *model.Report](appService, store, files, Options())
	reportService := service.New(resources, repo.NewReportRepository(db))

	base := resource.NewHandler(resources, resource.HandlerOptions[*model.Report]{
		NewInput:  func() resource.Applier[*model.Report] { return &dto.ReportInput{} },
		NewFilter: func() resource.Filter { return &dto.ReportFilter{} },
		FileField: "photos",
	})
	return &Module{
		Service: reportService,
		Handler: handler.New(base, reportService),
	}
}
