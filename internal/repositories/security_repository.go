package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SecurityRepository keeps the short-lived per-user state the auth layer
// needs: the current CSRF token and the session version that every issued
// JWT must match.
type SecurityRepository interface {
	SaveCSRFToken(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error
	GetCSRFToken(ctx context.Context, userID uuid.UUID) (string, error)
	SessionVersion(ctx context.Context, userID uuid.UUID) (int64, error)
	BumpSessionVersion(ctx context.Context, userID uuid.UUID) (int64, error)
}

type securityRepository struct {
	client *redis.Client
}

func NewSecurityRepo(client *redis.Client) SecurityRepository {
	return &securityRepository{client: client}
}

func csrfKey(userID uuid.UUID) string {
	return fmt.Sprintf("csrf:%s", userID)
}

func sessionVersionKey(userID uuid.UUID) string {
	return fmt.Sprintf("session_version:%s", userID)
}

func (r *securityRepository) SaveCSRFToken(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error {
	if err := r.client.Set(ctx, csrfKey(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store csrf token: %w", err)
	}

	return nil
}

// GetCSRFToken returns "" when no token is stored or it has expired.
func (r *securityRepository) GetCSRFToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := r.client.Get(ctx, csrfKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to read csrf token: %w", err)
	}

	return token, nil
}

// SessionVersion is 0 for users who never bumped it.
func (r *securityRepository) SessionVersion(ctx context.Context, userID uuid.UUID) (int64, error) {
	v, err := r.client.Get(ctx, sessionVersionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to read session version: %w", err)
	}

	return v, nil
}

// BumpSessionVersion invalidates every token issued so far for the user.
func (r *securityRepository) BumpSessionVersion(ctx context.Context, userID uuid.UUID) (int64, error) {
	v, err := r.client.Incr(ctx, sessionVersionKey(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to bump session version: %w", err)
	}

	return v, nil
}
