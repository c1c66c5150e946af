package testutils

import (
	"testing"
	"time"

	"pawcare-admin/internal/config"
)

// TestConfig returns a configuration suitable for unit tests: the cheapest
// bcrypt cost, a fixed secret and uploads rooted in a temp dir.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Port: "0", Mode: "test", MaxBodyMB: 10},
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			ExpirationHours: 24,
			Issuer:          "admin-panel-api",
			Audience:        "admin-panel-client",
		},
		Security: config.SecurityConfig{
			BcryptCost:       4,
			MaxLoginAttempts: 5,
			LockDuration:     2 * time.Hour,
			RegisterRole:     "user",
		},
		Upload: config.UploadConfig{
			Driver:    "local",
			Path:      t.TempDir(),
			URLPrefix: "/uploads/",
		},
		RateLimit: config.RateLimitConfig{Enabled: false, Requests: 10000, Window: 5 * time.Minute},
		Log:       config.LogConfig{Level: "error", Format: "json"},
	}
}
