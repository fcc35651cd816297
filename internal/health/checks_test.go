package health_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/health"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthBody struct {
	Status   string            `json:"status"`
	Failures map[string]string `json:"failures"`
}

func runCheck(t *testing.T, endpoints *health.Endpoints) healthBody {
	t.Helper()

	h, err := health.NewHealthHandler("test", endpoints)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	h.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body healthBody
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))

	return body
}

func TestNewHealthHandler(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		client, redisMock := redismock.NewClientMock()

		dbMock.ExpectPing()
		redisMock.ExpectPing().SetVal("PONG")

		body := runCheck(t, &health.Endpoints{DB: db, RedisClient: client})

		assert.Equal(t, "OK", body.Status)
		assert.Empty(t, body.Failures)
	})

	t.Run("Redis down", func(t *testing.T) {
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		client, redisMock := redismock.NewClientMock()

		dbMock.ExpectPing()
		redisMock.ExpectPing().SetErr(errors.New("connection refused"))

		body := runCheck(t, &health.Endpoints{DB: db, RedisClient: client})

		assert.Equal(t, "Unavailable", body.Status)
		assert.Contains(t, body.Failures, "redis")
	})

	t.Run("Nothing wired", func(t *testing.T) {
		body := runCheck(t, &health.Endpoints{})

		assert.Equal(t, "Unavailable", body.Status)
		assert.Contains(t, body.Failures, "database")
		assert.Contains(t, body.Failures, "redis")
	})
}
