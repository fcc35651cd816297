package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils"
	"github.com/google/uuid"
)

type CartRepository interface {
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetCartByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	UpdateCart(ctx context.Context, cart *models.Cart) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

// Lines are stored as one JSONB object keyed by line key.
func encodeLines(lines map[string]models.CartLine) ([]byte, error) {
	if lines == nil {
		return []byte("{}"), nil
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart items: %w", err)
	}

	return data, nil
}

func decodeLines(data []byte) (map[string]models.CartLine, error) {
	lines := make(map[string]models.CartLine)

	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart items: %w", err)
	}

	if lines == nil {
		lines = make(map[string]models.CartLine)
	}

	return lines, nil
}

// CreateCart inserts an empty cart for the user. When a concurrent request
// already created one, cart is overwritten with the stored row instead.
func (r *cartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	itemsJSON, err := encodeLines(cart.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO carts (id, user_id, items, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, items, total, created_at, updated_at
	`

	var stored []byte

	if err := r.DB.QueryRowContext(dbCtx, query, cart.ID, cart.UserID, itemsJSON, cart.Total).
		Scan(&cart.ID, &stored, &cart.Total, &cart.CreatedAt, &cart.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}

	cart.Items, err = decodeLines(stored)

	return err
}

func (r *cartRepository) GetCartByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, items, total, created_at, updated_at
		FROM carts
		WHERE user_id = $1
	`

	cart := &models.Cart{}

	var itemsJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, userID).Scan(&cart.ID, &cart.UserID, &itemsJSON, &cart.Total, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}

	if cart.Items, err = decodeLines(itemsJSON); err != nil {
		return nil, err
	}

	return cart, nil
}

// UpdateCart replaces the stored lines and total. sql.ErrNoRows means the
// cart no longer exists.
func (r *cartRepository) UpdateCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	itemsJSON, err := encodeLines(cart.Items)
	if err != nil {
		return err
	}

	query := `
		UPDATE carts
		SET items = $1, total = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err = r.DB.QueryRowContext(dbCtx, query, itemsJSON, cart.Total, cart.ID).Scan(&cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("failed to update the cart: %w", err)
	}

	return nil
}
