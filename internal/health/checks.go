package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/redis/go-redis/v9"
)

type Endpoints struct {
	DB          *sql.DB
	RedisClient *redis.Client
}

// NewHealthHandler checks the stores the storefront cannot serve without.
// Both checks reuse the application's pools instead of dialing new ones.
func NewHealthHandler(version string, endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "apparel-storefront",
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: func(ctx context.Context) error {
					if endpoints.DB == nil {
						return fmt.Errorf("database is not initialized")
					}

					if err := endpoints.DB.PingContext(ctx); err != nil {
						return fmt.Errorf("database ping failed: %w", err)
					}

					return nil
				},
			},
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: func(ctx context.Context) error {
					if endpoints.RedisClient == nil {
						return fmt.Errorf("redis client is not initialized")
					}

					if err := endpoints.RedisClient.Ping(ctx).Err(); err != nil {
						return fmt.Errorf("redis ping failed: %w", err)
					}

					return nil
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
