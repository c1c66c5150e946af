package service

import (
	"testing"
	"time"

	modulerepo "pawcare-admin/internal/modules/user/repo"
	platformservice "pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/testutils"

	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(testutils.TestConfig(t), nil)
	appService.SetClock(func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) })
	return New(appService, modulerepo.NewUserRepository(gdb)), gdb
}
