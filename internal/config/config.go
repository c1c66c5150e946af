package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DevJWTSecret is substituted for an empty secret outside release mode.
const DevJWTSecret = "pawcare_dev_secret"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Security  SecurityConfig  `mapstructure:"security"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port        string   `mapstructure:"port"`
	Mode        string   `mapstructure:"mode"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	MaxBodyMB   int      `mapstructure:"max_body_mb"`

	// StaticCacheControl is sent with files served from the local upload dir.
	StaticCacheControl string `mapstructure:"static_cache_control"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      bool   `mapstructure:"ssl"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
	Issuer          string `mapstructure:"issuer"`
	Audience        string `mapstructure:"audience"`
}

// Expiration returns the token lifetime, falling back to one day.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(j.ExpirationHours) * time.Hour
}

type SecurityConfig struct {
	BcryptCost       int           `mapstructure:"bcrypt_cost"`
	MaxLoginAttempts int           `mapstructure:"max_login_attempts"`
	LockDuration     time.Duration `mapstructure:"lock_duration"`
	RegisterRole     string        `mapstructure:"register_role"`
}

type UploadConfig struct {
	Driver    string   `mapstructure:"driver"` // local, s3
	Path      string   `mapstructure:"path"`
	URLPrefix string   `mapstructure:"url_prefix"`
	S3        S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	PublicURL string `mapstructure:"public_url"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json, console
}

// Load reads .env, config/config.yaml and PAWCARE_* environment variables,
// in increasing order of precedence.
func Load(configDir string) (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	v := newViper(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.checkSecret(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newViper(configDir string) *viper.Viper {
	v := viper.New()

	configDir = strings.TrimSpace(configDir)
	if configDir == "" {
		configDir = "config"
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000", "http://localhost:3001"})
	v.SetDefault("server.max_body_mb", 10)
	v.SetDefault("server.static_cache_control", "public, max-age=86400")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/pawcare.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "pawcare")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("jwt.issuer", "admin-panel-api")
	v.SetDefault("jwt.audience", "admin-panel-client")
	v.SetDefault("security.bcrypt_cost", 10)
	v.SetDefault("security.max_login_attempts", 5)
	v.SetDefault("security.lock_duration", 2*time.Hour)
	v.SetDefault("security.register_role", "user")
	v.SetDefault("upload.driver", "local")
	v.SetDefault("upload.path", "uploads")
	v.SetDefault("upload.url_prefix", "/uploads/")
	v.SetDefault("upload.s3.region", "us-east-1")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "pawcare")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 10000)
	v.SetDefault("rate_limit.window", 5*time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// server.port <- PAWCARE_SERVER_PORT
	v.SetEnvPrefix("PAWCARE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func (c *Config) checkSecret() error {
	if c.Server.Mode == "release" {
		if c.JWT.Secret == "" || c.JWT.Secret == DevJWTSecret {
			return errors.New("jwt.secret must be set in release mode (PAWCARE_JWT_SECRET)")
		}
		return nil
	}
	if c.JWT.Secret == "" {
		c.JWT.Secret = DevJWTSecret
	}
	return nil
}
