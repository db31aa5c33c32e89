// Package ratelimit throttles request rates using Redis
package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/carolbonk/fairmediator/pkg/metrics"
)

// Config holds Redis connection configuration
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewClient creates a Redis client and verifies connectivity
func NewClient(cfg Config, logger ectologger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}

	logger.Infof("Connected to Redis at %s", cfg.Addr)
	return rdb, nil
}

// Limiter applies a sliding window rate limit per key
type Limiter struct {
	rdb       *redis.Client
	logger    ectologger.Logger
	keyPrefix string
	limit     int64
	window    time.Duration
}

// NewLimiter creates a new rate limiter
func NewLimiter(rdb *redis.Client, logger ectologger.Logger, limit int, window time.Duration) *Limiter {
	return &Limiter{
		rdb:       rdb,
		logger:    logger,
		keyPrefix: "ratelimit:",
		limit:     int64(limit),
		window:    window,
	}
}

var allowScript = redis.NewScript(`
	local key = KEYS[1]
	local now = tonumber(ARGV[1])
	local window_start = tonumber(ARGV[2])
	local limit = tonumber(ARGV[3])
	local window_ms = tonumber(ARGV[4])

	redis.call("zremrangebyscore", key, "-inf", window_start)
	local current = redis.call("zcard", key)

	if current < limit then
		redis.call("zadd", key, now, now .. "-" .. math.random())
		redis.call("pexpire", key, window_ms)
		return 1
	end
	return 0
`)

// Allow reports whether a request under the given key may proceed
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	windowStart := now.Add(-l.window)

	result, err := allowScript.Run(ctx, l.rdb, []string{l.keyPrefix + key},
		now.UnixMilli(),
		windowStart.UnixMilli(),
		l.limit,
		l.window.Milliseconds(),
	).Int64()
	if err != nil {
		return false, err
	}

	return result == 1, nil
}

// Middleware limits requests per client IP. Redis failures let requests
// through; throttling is protection, not a correctness requirement.
func (l *Limiter) Middleware(limitName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := limitName + ":" + c.RealIP()

			allowed, err := l.Allow(ctx, key)
			if err != nil {
				l.logger.WithContext(ctx).WithError(err).Warn("Rate limiter unavailable, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.RateLimitHits.WithLabelValues(limitName).Inc()
				return httperror.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
