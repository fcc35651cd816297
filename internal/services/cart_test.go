package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/apparel-storefront/internal/errors"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	repoMocks "github.com/aaravmahajanofficial/apparel-storefront/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/apparel-storefront/internal/services"
	svcMocks "github.com/aaravmahajanofficial/apparel-storefront/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// shirt has M/red (2), M/blue (0) and L/blue (4).
func shirt() *models.Product {
	return &models.Product{
		ID:            uuid.New(),
		Name:          "Linen Shirt",
		NameAr:        "قميص كتان",
		Slug:          "linen-shirt",
		Price:         100,
		StockQuantity: 6,
		Status:        models.ProductStatusActive,
		VariantCombinations: []models.VariantCombination{
			{ID: uuid.New(), Size: "M", Color: "red", Stock: 2},
			{ID: uuid.New(), Size: "M", Color: "blue", Stock: 0},
			{ID: uuid.New(), Size: "L", Color: "blue", Stock: 4},
		},
	}
}

func emptyCart(userID uuid.UUID) *models.Cart {
	return &models.Cart{ID: uuid.New(), UserID: userID, Items: map[string]models.CartLine{}}
}

func assertAppError(t *testing.T, err error, code, key string) {
	t.Helper()

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok, "expected *AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)

	if key != "" {
		assert.Equal(t, key, appErr.Key)
	}
}

func TestCartService_GetCart(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - Existing Cart", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		svc := service.NewCartService(repo, new(svcMocks.ProductService))
		existing := emptyCart(userID)
		repo.On("GetCartByUserID", ctx, userID).Return(existing, nil).Once()

		// Act
		cart, err := svc.GetCart(ctx, userID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, existing, cart)
		repo.AssertExpectations(t)
	})

	t.Run("Success - Creates Cart On First Use", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		svc := service.NewCartService(repo, new(svcMocks.ProductService))
		repo.On("GetCartByUserID", ctx, userID).Return(nil, sql.ErrNoRows).Once()
		repo.On("CreateCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

		// Act
		cart, err := svc.GetCart(ctx, userID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, userID, cart.UserID)
		assert.NotEqual(t, uuid.Nil, cart.ID)
		assert.Empty(t, cart.Items)
		repo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		svc := service.NewCartService(repo, new(svcMocks.ProductService))
		dbErr := errors.New("connection reset")
		repo.On("GetCartByUserID", ctx, userID).Return(nil, dbErr).Once()

		// Act
		cart, err := svc.GetCart(ctx, userID)

		// Assert
		assert.Nil(t, cart)
		assertAppError(t, err, appErrors.ErrCodeDatabaseError, "")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - Adds Line", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		products := new(svcMocks.ProductService)
		svc := service.NewCartService(repo, products)
		product := shirt()

		products.On("GetProductByID", ctx, product.ID).Return(product, nil).Once()
		repo.On("GetCartByUserID", ctx, userID).Return(emptyCart(userID), nil).Once()
		repo.On("UpdateCart", ctx, mock.MatchedBy(func(c *models.Cart) bool {
			line, ok := c.Items[models.LineKey(product.ID, "M", "red")]
			return ok && line.Quantity == 2 && c.Total == 200
		})).Return(nil).Once()

		// Act
		resp, err := svc.AddItem(ctx, userID, &models.AddItemRequest{ProductID: product.ID, Size: "M", Color: "red", Quantity: 2})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, i18n.T(i18n.English, i18n.KeyAddedToCart), resp.Message)
		assert.Len(t, resp.Cart.Items, 1)
		repo.AssertExpectations(t)
		products.AssertExpectations(t)
	})

	t.Run("Success - Merges Into Existing Line", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		products := new(svcMocks.ProductService)
		svc := service.NewCartService(repo, products)
		product := shirt()
		cart := emptyCart(userID)
		key := models.LineKey(product.ID, "L", "blue")
		cart.Items[key] = models.CartLine{ProductID: product.ID, SelectedSize: "L", SelectedColor: "blue", Quantity: 1, UnitPrice: 100, TotalPrice: 100}

		products.On("GetProductByID", ctx, product.ID).Return(product, nil).Once()
		repo.On("GetCartByUserID", ctx, userID).Return(cart, nil).Once()
		repo.On("UpdateCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

		// Act
		resp, err := svc.AddItem(ctx, userID, &models.AddItemRequest{ProductID: product.ID, Size: "L", Color: "blue", Quantity: 3})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 4, resp.Cart.Items[key].Quantity)
		assert.Equal(t, float64(400), resp.Cart.Total)
	})

	t.Run("Failure - Quantity Bound Includes Cart", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		products := new(svcMocks.ProductService)
		svc := service.NewCartService(repo, products)
		product := shirt()
		cart := emptyCart(userID)
		cart.Items[models.LineKey(product.ID, "M", "red")] = models.CartLine{ProductID: product.ID, SelectedSize: "M", SelectedColor: "red", Quantity: 2}

		products.On("GetProductByID", ctx, product.ID).Return(product, nil).Once()
		repo.On("GetCartByUserID", ctx, userID).Return(cart, nil).Once()

		// Act
		resp, err := svc.AddItem(ctx, userID, &models.AddItemRequest{ProductID: product.ID, Size: "M", Color: "red", Quantity: 1})

		// Assert
		assert.Nil(t, resp)
		assertAppError(t, err, appErrors.ErrCodeOutOfStock, i18n.KeyQuantityLimit)
		repo.AssertNotCalled(t, "UpdateCart", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Selection Incomplete", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		products := new(svcMocks.ProductService)
		svc := service.NewCartService(repo, products)
		product := shirt()

		products.On("GetProductByID", ctx, product.ID).Return(product, nil).Once()
		repo.On("GetCartByUserID", ctx, userID).Return(emptyCart(userID), nil).Once()

		// Act
		_, err := svc.AddItem(ctx, userID, &models.AddItemRequest{ProductID: product.ID, Size: "L", Quantity: 1})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeSelectionIncomplete, i18n.KeySelectionIncomplete)
	})

	t.Run("Failure - Sold Out Combination", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		products := new(svcMocks.ProductService)
		svc := service.NewCartService(repo, products)
		product := shirt()

		products.On("GetProductByID", ctx, product.ID).Return(product, nil).Once()
		repo.On("GetCartByUserID", ctx, userID).Return(emptyCart(userID), nil).Once()

		// Act
		_, err := svc.AddItem(ctx, userID, &models.AddItemRequest{ProductID: product.ID, Size: "M", Color: "blue", Quantity: 1})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeOutOfStock, i18n.KeyOutOfStock)
	})

	t.Run("Failure - Unknown Size", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		products := new(svcMocks.ProductService)
		svc := service.NewCartService(repo, products)
		product := shirt()

		products.On("GetProductByID", ctx, product.ID).Return(product, nil).Once()
		repo.On("GetCartByUserID", ctx, userID).Return(emptyCart(userID), nil).Once()

		// Act
		_, err := svc.AddItem(ctx, userID, &models.AddItemRequest{ProductID: product.ID, Size: "XXL", Color: "red", Quantity: 1})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeBadRequest, i18n.KeyOptionUnavailable)
	})

	t.Run("Failure - Inactive Product", func(t *testing.T) {
		// Arrange
		products := new(svcMocks.ProductService)
		svc := service.NewCartService(new(repoMocks.CartRepository), products)
		product := shirt()
		product.Status = models.ProductStatusArchived
		products.On("GetProductByID", ctx, product.ID).Return(product, nil).Once()

		// Act
		_, err := svc.AddItem(ctx, userID, &models.AddItemRequest{ProductID: product.ID, Size: "M", Color: "red", Quantity: 1})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeNotFound, i18n.KeyProductNotFound)
	})

	t.Run("Failure - Save Error", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		products := new(svcMocks.ProductService)
		svc := service.NewCartService(repo, products)
		product := shirt()

		products.On("GetProductByID", ctx, product.ID).Return(product, nil).Once()
		repo.On("GetCartByUserID", ctx, userID).Return(emptyCart(userID), nil).Once()
		repo.On("UpdateCart", ctx, mock.Anything).Return(errors.New("write failed")).Once()

		// Act
		_, err := svc.AddItem(ctx, userID, &models.AddItemRequest{ProductID: product.ID, Size: "M", Color: "red", Quantity: 1})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeDatabaseError, "")
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := shirt()
	key := models.LineKey(product.ID, "L", "blue")

	cartWithLine := func() *models.Cart {
		cart := emptyCart(userID)
		cart.Items[key] = models.CartLine{ProductID: product.ID, SelectedSize: "L", SelectedColor: "blue", Quantity: 1, UnitPrice: 100, TotalPrice: 100}
		cart.Total = 100
		return cart
	}

	t.Run("Success - Changes Quantity", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		products := new(svcMocks.ProductService)
		svc := service.NewCartService(repo, products)
		repo.On("GetCartByUserID", ctx, userID).Return(cartWithLine(), nil).Once()
		products.On("GetProductByID", ctx, product.ID).Return(product, nil).Once()
		repo.On("UpdateCart", ctx, mock.Anything).Return(nil).Once()

		// Act
		cart, err := svc.UpdateQuantity(ctx, userID, &models.UpdateQuantityRequest{LineKey: key, Quantity: 3})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 3, cart.Items[key].Quantity)
		assert.Equal(t, float64(300), cart.Total)
	})

	t.Run("Success - Zero Removes Line", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		svc := service.NewCartService(repo, new(svcMocks.ProductService))
		repo.On("GetCartByUserID", ctx, userID).Return(cartWithLine(), nil).Once()
		repo.On("UpdateCart", ctx, mock.Anything).Return(nil).Once()

		// Act
		cart, err := svc.UpdateQuantity(ctx, userID, &models.UpdateQuantityRequest{LineKey: key, Quantity: 0})

		// Assert
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
		assert.Zero(t, cart.Total)
	})

	t.Run("Failure - Above Stock", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		products := new(svcMocks.ProductService)
		svc := service.NewCartService(repo, products)
		repo.On("GetCartByUserID", ctx, userID).Return(cartWithLine(), nil).Once()
		products.On("GetProductByID", ctx, product.ID).Return(product, nil).Once()

		// Act
		_, err := svc.UpdateQuantity(ctx, userID, &models.UpdateQuantityRequest{LineKey: key, Quantity: 5})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeOutOfStock, i18n.KeyQuantityLimit)
	})

	t.Run("Failure - Unknown Line", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		svc := service.NewCartService(repo, new(svcMocks.ProductService))
		repo.On("GetCartByUserID", ctx, userID).Return(cartWithLine(), nil).Once()

		// Act
		_, err := svc.UpdateQuantity(ctx, userID, &models.UpdateQuantityRequest{LineKey: "nope", Quantity: 1})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeNotFound, i18n.KeyCartItemNotFound)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		svc := service.NewCartService(repo, new(svcMocks.ProductService))
		cart := emptyCart(userID)
		cart.Items["k"] = models.CartLine{Quantity: 1, TotalPrice: 50}
		repo.On("GetCartByUserID", ctx, userID).Return(cart, nil).Once()
		repo.On("UpdateCart", ctx, cart).Return(nil).Once()

		// Act
		updated, err := svc.RemoveItem(ctx, userID, "k")

		// Assert
		require.NoError(t, err)
		assert.Empty(t, updated.Items)
		repo.AssertExpectations(t)
	})

	t.Run("Failure - Not In Cart", func(t *testing.T) {
		// Arrange
		repo := new(repoMocks.CartRepository)
		svc := service.NewCartService(repo, new(svcMocks.ProductService))
		repo.On("GetCartByUserID", ctx, userID).Return(emptyCart(userID), nil).Once()

		// Act
		_, err := svc.RemoveItem(ctx, userID, "k")

		// Assert
		assertAppError(t, err, appErrors.ErrCodeNotFound, i18n.KeyCartItemNotFound)
	})
}
