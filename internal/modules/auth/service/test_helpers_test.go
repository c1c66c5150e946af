package service

import (
	"testing"
	"time"

	"pawcare-admin/internal/model"
	userrepo "pawcare-admin/internal/modules/user/repo"
	platformservice "pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/testutils"

	"gorm.io/gorm"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func setupTestService(t *testing.T) (*Service, *gorm.DB, *testClock) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	clock := &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	appService := platformservice.NewAppService(testutils.TestConfig(t), nil)
	appService.SetClock(clock.Now)
	return New(appService, userrepo.NewUserRepository(gdb)), gdb, clock
}

func reloadUser(t *testing.T, gdb *gorm.DB, id uint) model.User {
	t.Helper()
	var u model.User
	if err := gdb.First(&u, id).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	return u
}
