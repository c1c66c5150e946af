package service

import (
	"time"

	"pawcare-admin/internal/config"

	"go.uber.org/zap"
)

// AppService carries the process-wide dependencies every module service
// embeds: configuration, logger and the clock used for lockout and tokens.
type AppService struct {
	cfg    *config.Config
	logger *zap.Logger
	now    func() time.Time
}

func NewAppService(cfg *config.Config, logger *zap.Logger) *AppService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppService{cfg: cfg, logger: logger, now: time.Now}
}

func (s *AppService) Config() *config.Config {
	return s.cfg
}

func (s *AppService) Logger() *zap.Logger {
	return s.logger
}

func (s *AppService) Now() time.Time {
	return s.now()
}

// SetClock replaces the clock. Used by tests that walk through lock windows.
func (s *AppService) SetClock(now func() time.Time) {
	s.now = now
}
