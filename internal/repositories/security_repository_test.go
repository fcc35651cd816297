package repository_test

import (
	"errors"
	"testing"
	"time"

	repository "github.com/aaravmahajanofficial/apparel-storefront/internal/repositories"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityRepository_CSRF(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := repository.NewSecurityRepo(client)
	ctx := t.Context()
	userID := uuid.New()
	key := "csrf:" + userID.String()

	t.Run("Save", func(t *testing.T) {
		mock.ExpectSet(key, "tok", 2*time.Hour).SetVal("OK")

		require.NoError(t, repo.SaveCSRFToken(ctx, userID, "tok", 2*time.Hour))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Get", func(t *testing.T) {
		mock.ExpectGet(key).SetVal("tok")

		token, err := repo.GetCSRFToken(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, "tok", token)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Expired", func(t *testing.T) {
		mock.ExpectGet(key).RedisNil()

		token, err := repo.GetCSRFToken(ctx, userID)

		require.NoError(t, err)
		assert.Empty(t, token)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis error", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(errors.New("connection refused"))

		_, err := repo.GetCSRFToken(ctx, userID)

		assert.ErrorContains(t, err, "failed to read csrf token")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSecurityRepository_SessionVersion(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := repository.NewSecurityRepo(client)
	ctx := t.Context()
	userID := uuid.New()
	key := "session_version:" + userID.String()

	t.Run("Unset is zero", func(t *testing.T) {
		mock.ExpectGet(key).RedisNil()

		v, err := repo.SessionVersion(ctx, userID)

		require.NoError(t, err)
		assert.Zero(t, v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Stored value", func(t *testing.T) {
		mock.ExpectGet(key).SetVal("4")

		v, err := repo.SessionVersion(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, int64(4), v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Bump", func(t *testing.T) {
		mock.ExpectIncr(key).SetVal(5)

		v, err := repo.BumpSessionVersion(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, int64(5), v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
