package redisclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pawcare-admin/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultPrefix = "pawcare"

// Client is a go-redis client that namespaces its keys.
type Client struct {
	*redis.Client
	prefix string
}

// New connects to Redis. It returns nil when Redis is disabled or does not
// answer a ping, and callers fall back to in-memory state.
func New(cfg config.RedisConfig, logger *zap.Logger) *Client {
	if !cfg.Enabled {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		logger.Warn("redis unavailable, using in-memory mode", zap.String("addr", cfg.Addr), zap.Error(err))
		return nil
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	return Wrap(rdb, cfg.Prefix)
}

func Wrap(rdb *redis.Client, prefix string) *Client {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Client{Client: rdb, prefix: prefix}
}

// Key joins parts under the configured prefix with ':'.
func (c *Client) Key(parts ...string) string {
	if len(parts) == 0 {
		return c.prefix
	}
	return c.prefix + ":" + strings.Join(parts, ":")
}

func (c *Client) Close() error {
	if c == nil || c.Client == nil {
		return nil
	}
	if err := c.Client.Close(); err != nil {
		return fmt.Errorf("close redis failed: %w", err)
	}
	return nil
}
