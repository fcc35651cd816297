package repository

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLoginLimiter(t *testing.T, now time.Time) (*loginLimiter, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	return &loginLimiter{
		client:      client,
		maxAttempts: 3,
		window:      time.Minute,
		now:         func() time.Time { return now },
	}, mock
}

func TestLoginLimiter_CheckLoginRateLimit(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	key := "login_attempts:noor@example.com"
	windowStart := strconv.FormatInt(now.Add(-time.Minute).UnixMilli(), 10)

	t.Run("Allowed attempt is recorded", func(t *testing.T) {
		limiter, mock := setupLoginLimiter(t, now)

		mock.ExpectZRemRangeByScore(key, "0", windowStart).SetVal(0)
		mock.ExpectZCard(key).SetVal(1)
		mock.ExpectZRangeWithScores(key, 0, 0).SetVal([]redis.Z{{Score: float64(now.Add(-10 * time.Second).UnixMilli()), Member: "1"}})
		mock.ExpectZAdd(key, redis.Z{Score: float64(now.UnixMilli()), Member: strconv.FormatInt(now.UnixNano(), 10)}).SetVal(1)
		mock.ExpectExpire(key, time.Minute).SetVal(true)

		allowed, remaining, retryAfter, err := limiter.CheckLoginRateLimit(t.Context(), "noor@example.com")

		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 1, remaining)
		assert.Zero(t, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Blocked attempt reports retry after", func(t *testing.T) {
		limiter, mock := setupLoginLimiter(t, now)

		mock.ExpectZRemRangeByScore(key, "0", windowStart).SetVal(0)
		mock.ExpectZCard(key).SetVal(3)
		mock.ExpectZRangeWithScores(key, 0, 0).SetVal([]redis.Z{{Score: float64(now.Add(-45 * time.Second).UnixMilli()), Member: "1"}})

		allowed, remaining, retryAfter, err := limiter.CheckLoginRateLimit(t.Context(), "noor@example.com")

		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, remaining)
		assert.Equal(t, 15, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis error", func(t *testing.T) {
		limiter, mock := setupLoginLimiter(t, now)

		mock.ExpectZRemRangeByScore(key, "0", windowStart).SetErr(errors.New("connection refused"))

		_, _, _, err := limiter.CheckLoginRateLimit(t.Context(), "noor@example.com")

		assert.ErrorContains(t, err, "failed to read login attempts")
	})
}

func TestLoginLimiter_ResetLoginAttempts(t *testing.T) {
	limiter, mock := setupLoginLimiter(t, time.Now())

	mock.ExpectDel("login_attempts:noor@example.com").SetVal(1)

	require.NoError(t, limiter.ResetLoginAttempts(t.Context(), "noor@example.com"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
