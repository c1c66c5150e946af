package middleware

import (
	"net/http"
	"sync"
	"time"

	"pawcare-admin/internal/config"
	"pawcare-admin/internal/modules/common/httpx"
	"pawcare-admin/internal/platform/redisclient"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const msgTooManyRequests = "Too many requests from this IP, please try again later."

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (i *IPRateLimiter) Allow(ip string) bool {
	return i.getLimiter(ip).Allow()
}

func (i *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		i.ips.Range(func(key, value interface{}) bool {
			client := value.(*client)
			if time.Since(client.lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// windowRate spreads requests evenly over window, with the whole allowance
// available as burst.
func windowRate(requests int, window time.Duration) rate.Limit {
	if requests <= 0 || window <= 0 {
		return rate.Inf
	}
	return rate.Every(window / time.Duration(requests))
}

// RateLimit limits each client IP to cfg.Requests per cfg.Window. With Redis
// the window is shared across instances; if Redis fails the in-memory
// limiter decides.
func RateLimit(cfg config.RateLimitConfig, rdb *redisclient.Client, logger *zap.Logger) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Requests <= 0 || cfg.Window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	local := NewIPRateLimiter(windowRate(cfg.Requests, cfg.Window), cfg.Requests)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		var allowed bool
		if rdb != nil {
			ok, err := allowByRedisRateLimit(c.Request.Context(), rdb, ip, cfg.Requests, cfg.Window)
			if err != nil {
				logger.Warn("redis rate limit failed, using in-memory limiter", zap.Error(err))
				ok = local.Allow(ip)
			}
			allowed = ok
		} else {
			allowed = local.Allow(ip)
		}

		if !allowed {
			httpx.Fail(c, http.StatusTooManyRequests, msgTooManyRequests, nil)
			return
		}
		c.Next()
	}
}
