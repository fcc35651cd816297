package repository_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartRepoTest(t *testing.T) (repository.CartRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewCartRepo(db)
	require.NotNil(t, repo, "NewCartRepo should return a non-nil repository")

	return repo, mock
}

func TestCartRepository(t *testing.T) {
	repo, mock := setupCartRepoTest(t)
	ctx := t.Context()

	t.Run("Create Cart", func(t *testing.T) {
		cart := &models.Cart{
			ID:     uuid.New(),
			UserID: uuid.New(),
			Items:  make(map[string]models.CartLine),
		}
		expectedItemsJSON, err := json.Marshal(cart.Items)
		require.NoError(t, err)

		returned := []string{"id", "items", "total", "created_at", "updated_at"}

		t.Run("Success", func(t *testing.T) {
			now := time.Now()
			mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO carts")).
				WithArgs(cart.ID, cart.UserID, expectedItemsJSON, cart.Total).
				WillReturnRows(sqlmock.NewRows(returned).AddRow(cart.ID.String(), []byte("{}"), 0.0, now, now))

			err := repo.CreateCart(ctx, cart)

			require.NoError(t, err, "CreateCart should not return an error on success")
			assert.WithinDuration(t, now, cart.CreatedAt, time.Second)
			assert.NotNil(t, cart.Items)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Concurrent create returns the stored cart", func(t *testing.T) {
			existingID := uuid.New()
			productID := uuid.New()
			line := models.CartLine{ProductID: productID, Quantity: 1, UnitPrice: 50, TotalPrice: 50, SelectedSize: "S", SelectedColor: "black"}
			storedJSON, err := json.Marshal(map[string]models.CartLine{line.Key(): line})
			require.NoError(t, err)

			fresh := &models.Cart{ID: uuid.New(), UserID: cart.UserID, Items: map[string]models.CartLine{}}
			mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (user_id)")).
				WillReturnRows(sqlmock.NewRows(returned).AddRow(existingID.String(), storedJSON, 50.0, time.Now(), time.Now()))

			require.NoError(t, repo.CreateCart(ctx, fresh))

			assert.Equal(t, existingID, fresh.ID)
			assert.Equal(t, 50.0, fresh.Total)
			assert.Contains(t, fresh.Items, line.Key())
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Marshal Error", func(t *testing.T) {
			productID := uuid.New()
			invalidCart := &models.Cart{
				ID:     uuid.New(),
				UserID: uuid.New(),
				Items: map[string]models.CartLine{
					models.LineKey(productID, "M", "red"): {ProductID: productID, Quantity: 1, UnitPrice: math.Inf(1)},
				},
			}

			err := repo.CreateCart(ctx, invalidCart)

			require.Error(t, err)
			assert.ErrorContains(t, err, "failed to marshal cart items")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetCartByUserID", func(t *testing.T) {
		userID := uuid.New()
		cartID := uuid.New()
		productID := uuid.New()
		now := time.Now()
		line := models.CartLine{ProductID: productID, Quantity: 2, Price: 100, UnitPrice: 80, TotalPrice: 160, SelectedSize: "M", SelectedColor: "red"}
		expectedItems := map[string]models.CartLine{line.Key(): line}
		expectedItemsJSON, err := json.Marshal(expectedItems)
		require.NoError(t, err)

		expectedSQL := regexp.QuoteMeta("FROM carts")
		columns := []string{"id", "user_id", "items", "total", "created_at", "updated_at"}

		t.Run("Success", func(t *testing.T) {
			rows := sqlmock.NewRows(columns).AddRow(cartID.String(), userID.String(), expectedItemsJSON, 160.0, now, now)
			mock.ExpectQuery(expectedSQL).WithArgs(userID).WillReturnRows(rows)

			cart, err := repo.GetCartByUserID(ctx, userID)

			require.NoError(t, err)
			assert.Equal(t, cartID, cart.ID)
			assert.Equal(t, expectedItems, cart.Items)
			assert.Equal(t, 160.0, cart.Total)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Empty items become an empty map", func(t *testing.T) {
			rows := sqlmock.NewRows(columns).AddRow(cartID.String(), userID.String(), []byte("null"), 0.0, now, now)
			mock.ExpectQuery(expectedSQL).WithArgs(userID).WillReturnRows(rows)

			cart, err := repo.GetCartByUserID(ctx, userID)

			require.NoError(t, err)
			assert.NotNil(t, cart.Items)
			assert.Empty(t, cart.Items)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Not Found", func(t *testing.T) {
			mock.ExpectQuery(expectedSQL).WithArgs(userID).WillReturnError(sql.ErrNoRows)

			cart, err := repo.GetCartByUserID(ctx, userID)

			assert.ErrorIs(t, err, sql.ErrNoRows)
			assert.Nil(t, cart)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Unmarshal Error", func(t *testing.T) {
			rows := sqlmock.NewRows(columns).AddRow(cartID.String(), userID.String(), []byte(`{"invalid"`), 0.0, now, now)
			mock.ExpectQuery(expectedSQL).WithArgs(userID).WillReturnRows(rows)

			cart, err := repo.GetCartByUserID(ctx, userID)

			assert.ErrorContains(t, err, "failed to unmarshal cart items")
			assert.Nil(t, cart)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateCart", func(t *testing.T) {
		cart := &models.Cart{ID: uuid.New(), UserID: uuid.New(), Items: map[string]models.CartLine{}, Total: 0}
		itemsJSON, _ := json.Marshal(cart.Items)
		expectedSQL := regexp.QuoteMeta("UPDATE carts")

		t.Run("Success", func(t *testing.T) {
			now := time.Now()
			mock.ExpectQuery(expectedSQL).
				WithArgs(itemsJSON, cart.Total, cart.ID).
				WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

			require.NoError(t, repo.UpdateCart(ctx, cart))
			assert.WithinDuration(t, now, cart.UpdatedAt, time.Second)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - No Rows", func(t *testing.T) {
			mock.ExpectQuery(expectedSQL).
				WithArgs(itemsJSON, cart.Total, cart.ID).
				WillReturnError(sql.ErrNoRows)

			assert.ErrorIs(t, repo.UpdateCart(ctx, cart), sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Database Error", func(t *testing.T) {
			dbErr := errors.New("deadlock detected")
			mock.ExpectQuery(expectedSQL).WillReturnError(dbErr)

			err := repo.UpdateCart(ctx, cart)

			assert.ErrorIs(t, err, dbErr)
			assert.ErrorContains(t, err, "failed to update the cart")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
