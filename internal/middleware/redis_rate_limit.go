package middleware

import (
	"context"
	"time"

	"pawcare-admin/internal/platform/redisclient"
)

// allowByRedisRateLimit counts requests for ip in a fixed window. The first
// hit of a window sets the expiry.
func allowByRedisRateLimit(ctx context.Context, rdb *redisclient.Client, ip string, limit int, window time.Duration) (bool, error) {
	if limit <= 0 || window <= 0 {
		return true, nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	key := rdb.Key("rate", ip)
	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}
