package repository

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

// RateLimitRepository throttles sign-in attempts per email address.
type RateLimitRepository interface {
	// CheckLoginRateLimit records an attempt and returns whether it may
	// proceed, the attempts left in the window and, when blocked, the
	// seconds until the oldest attempt leaves the window.
	CheckLoginRateLimit(ctx context.Context, email string) (bool, int, int, error)
	ResetLoginAttempts(ctx context.Context, email string) error
}

type loginLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
	now         func() time.Time
}

func NewRateLimitRepo(client *redis.Client, cfg *config.Config) RateLimitRepository {
	return &loginLimiter{
		client:      client,
		maxAttempts: cfg.RateConfig.MaxAttempts,
		window:      cfg.RateConfig.WindowSize,
		now:         time.Now,
	}
}

func loginAttemptsKey(email string) string {
	return "login_attempts:" + email
}

// Attempts live in a sorted set scored by unix milliseconds. A blocked
// attempt is not recorded, so hammering the endpoint does not push the
// window forward.
func (l *loginLimiter) CheckLoginRateLimit(ctx context.Context, email string) (bool, int, int, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := loginAttemptsKey(email)
	now := l.now()
	windowStart := now.Add(-l.window).UnixMilli()

	var count *redis.IntCmd
	var oldest *redis.ZSliceCmd

	_, err := l.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
		count = pipe.ZCard(ctx, key)
		oldest = pipe.ZRangeWithScores(ctx, key, 0, 0)
		return nil
	})
	if err != nil {
		return false, 0, 0, fmt.Errorf("failed to read login attempts: %w", err)
	}

	attempts := count.Val()

	if attempts >= l.maxAttempts {
		retryAfter := int(l.window.Seconds())

		if first := oldest.Val(); len(first) > 0 {
			expires := time.UnixMilli(int64(first[0].Score)).Add(l.window)
			retryAfter = max(int(math.Ceil(expires.Sub(now).Seconds())), 1)
		}

		logger.Warn("Login rate limit exceeded", slog.Int64("attempts", attempts), slog.Int("retryAfter", retryAfter))

		return false, 0, retryAfter, nil
	}

	_, err = l.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixMilli()), Member: strconv.FormatInt(now.UnixNano(), 10)})
		pipe.Expire(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return false, 0, 0, fmt.Errorf("failed to record login attempt: %w", err)
	}

	return true, int(l.maxAttempts - attempts - 1), 0, nil
}

func (l *loginLimiter) ResetLoginAttempts(ctx context.Context, email string) error {

	if err := l.client.Del(ctx, loginAttemptsKey(email)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}

	return nil
}
