package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/apparel-storefront/internal/errors"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	svcMocks "github.com/aaravmahajanofficial/apparel-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetCart(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		cart := &models.Cart{ID: uuid.New(), UserID: userID, Items: map[string]models.CartLine{}}
		mockService.On("GetCart", mock.Anything, userID).Return(cart, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/cart", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.Cart
		decodeData(t, decodeResponse(t, rr), &got)
		assert.Equal(t, cart.ID, got.ID)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - unauthenticated", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/cart", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, decodeResponse(t, rr).Error.Code)
		mockService.AssertNotCalled(t, "GetCart")
	})
}

func TestAddItem(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	t.Run("Success - message in envelope", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		addReq := models.AddItemRequest{ProductID: productID, Size: "M", Color: "red", Quantity: 1}
		line := models.CartLine{ProductID: productID, SelectedSize: "M", SelectedColor: "red", Quantity: 1, UnitPrice: 100, TotalPrice: 100}
		cart := &models.Cart{UserID: userID, Items: map[string]models.CartLine{line.Key(): line}, Total: 100}

		mockService.On("AddItem", mock.Anything, userID, &addReq).
			Return(&models.CartResponse{Cart: cart, Message: "Added to cart"}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/cart/items", jsonBody(t, addReq), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		resp := decodeResponse(t, rr)
		assert.True(t, resp.Success)
		assert.Equal(t, "Added to cart", resp.Message)

		var got models.Cart
		decodeData(t, resp, &got)
		assert.Contains(t, got.Items, line.Key())
		assert.Equal(t, 100.0, got.Total)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - selection incomplete", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		addReq := models.AddItemRequest{ProductID: productID, Size: "M", Quantity: 1}

		mockService.On("AddItem", mock.Anything, userID, &addReq).
			Return(nil, appErrors.SelectionIncompleteError("Size and color are required").WithKey(i18n.KeySelectionIncomplete)).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/cart/items", jsonBody(t, addReq), userID, nil)
		req = testutils.WithLang(req, i18n.Arabic)
		rr := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		resp := decodeResponse(t, rr)
		assert.Equal(t, appErrors.ErrCodeSelectionIncomplete, resp.Error.Code)
		assert.Equal(t, i18n.T(i18n.Arabic, i18n.KeySelectionIncomplete), resp.Error.Message)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - out of stock", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		addReq := models.AddItemRequest{ProductID: productID, Size: "M", Color: "blue", Quantity: 1}

		mockService.On("AddItem", mock.Anything, userID, &addReq).
			Return(nil, appErrors.OutOfStockError("Selection is out of stock").WithKey(i18n.KeyOutOfStock)).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/cart/items", jsonBody(t, addReq), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, appErrors.ErrCodeOutOfStock, decodeResponse(t, rr).Error.Code)
	})

	t.Run("Failure - quantity zero rejected before service", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/cart/items", jsonBody(t, models.AddItemRequest{ProductID: productID}), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "AddItem")
	})
}

func TestUpdateQuantityAndRemoveItem(t *testing.T) {
	userID := uuid.New()
	lineKey := models.LineKey(uuid.New(), "L", "blue")

	t.Run("Update - quantity above stock", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		updateReq := models.UpdateQuantityRequest{LineKey: lineKey, Quantity: 9}

		mockService.On("UpdateQuantity", mock.Anything, userID, &updateReq).
			Return(nil, appErrors.OutOfStockError("Requested quantity exceeds available stock").WithKey(i18n.KeyQuantityLimit)).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/cart/items", jsonBody(t, updateReq), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, i18n.T(i18n.English, i18n.KeyQuantityLimit), decodeResponse(t, rr).Error.Message)
		mockService.AssertExpectations(t)
	})

	t.Run("Remove - path value passed through", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		cart := &models.Cart{UserID: userID, Items: map[string]models.CartLine{}}
		mockService.On("RemoveItem", mock.Anything, userID, lineKey).Return(cart, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/cart/items/"+url.PathEscape(lineKey), nil, userID, map[string]string{"lineKey": lineKey})
		rr := httptest.NewRecorder()

		// Act
		handler.RemoveItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, i18n.T(i18n.English, i18n.KeyCartUpdated), decodeResponse(t, rr).Message)
		mockService.AssertExpectations(t)
	})

	t.Run("Remove - unknown line", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		mockService.On("RemoveItem", mock.Anything, userID, "nope").
			Return(nil, appErrors.NotFoundError("Item not found in the cart").WithKey(i18n.KeyCartItemNotFound)).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/cart/items/nope", nil, userID, map[string]string{"lineKey": "nope"})
		rr := httptest.NewRecorder()

		// Act
		handler.RemoveItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
