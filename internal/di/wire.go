//go:build wireinject
// +build wireinject

package di

import (
	"pawcare-admin/internal/config"
	"pawcare-admin/internal/modules"
	"pawcare-admin/internal/modules/resource"
	userrepo "pawcare-admin/internal/modules/user/repo"
	"pawcare-admin/internal/platform/redisclient"
	"pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/router"
	"pawcare-admin/internal/storage"

	"github.com/google/wire"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func InitializeApplication(
	cfg *config.Config,
	logger *zap.Logger,
	gormDB *gorm.DB,
	files *storage.Store,
	rdb *redisclient.Client,
) (*Application, error) {
	wire.Build(
		service.NewAppService,
		userrepo.NewUserRepository,
		wire.Bind(new(userrepo.UserStore), new(*userrepo.UserRepository)),
		wire.Bind(new(resource.Files), new(*storage.Store)),
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
