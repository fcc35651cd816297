package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
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

func TestListProducts(t *testing.T) {

	t.Run("Success - active products only", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		views := []*models.ProductView{
			{Product: &models.Product{ID: uuid.New(), Slug: "linen-shirt", Status: models.ProductStatusActive}, EffectivePrice: 120},
		}

		mockService.On("ListProducts", mock.Anything, models.ProductFilter{
			CategorySlug: "shirts",
			Status:       models.ProductStatusActive,
			Page:         2,
			PageSize:     5,
		}).Return(views, 6, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/products?category=shirts&page=2&pageSize=5", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		resp := decodeResponse(t, rr)
		assert.True(t, resp.Success)

		var page struct {
			Data     []models.ProductView `json:"data"`
			Total    int                  `json:"total"`
			Page     int                  `json:"page"`
			PageSize int                  `json:"pageSize"`
		}
		decodeData(t, resp, &page)

		assert.Len(t, page.Data, 1)
		assert.Equal(t, "linen-shirt", page.Data[0].Slug)
		assert.Equal(t, 6, page.Total)
		assert.Equal(t, 2, page.Page)

		mockService.AssertExpectations(t)
	})
}

func TestGetProduct(t *testing.T) {

	t.Run("Failure - not found in Arabic", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		mockService.On("GetProductBySlug", mock.Anything, "missing").
			Return(nil, appErrors.NotFoundError("Product not found").WithKey(i18n.KeyProductNotFound)).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/products/missing", nil, map[string]string{"slug": "missing"})
		req = testutils.WithLang(req, i18n.Arabic)
		rr := httptest.NewRecorder()

		// Act
		handler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)

		resp := decodeResponse(t, rr)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)
		assert.Equal(t, i18n.T(i18n.Arabic, i18n.KeyProductNotFound), resp.Error.Message)

		mockService.AssertExpectations(t)
	})
}

func TestCheckAvailability(t *testing.T) {

	t.Run("Success - selection evaluated", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		expected := &models.AvailabilityResponse{
			Selection:      models.Selection{Size: "M", Color: "red", Quantity: 1},
			HasStock:       true,
			AvailableStock: 2,
			CanAddToCart:   true,
		}

		mockService.On("CheckAvailability", mock.Anything, "linen-shirt", &models.AvailabilityRequest{Size: "M", Color: "red", Quantity: 1}).
			Return(expected, nil).Once()

		body := jsonBody(t, models.AvailabilityRequest{Size: "M", Color: "red", Quantity: 1})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/products/linen-shirt/availability", body, map[string]string{"slug": "linen-shirt"})
		rr := httptest.NewRecorder()

		// Act
		handler.CheckAvailability().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.AvailabilityResponse
		decodeData(t, decodeResponse(t, rr), &got)
		assert.Equal(t, 2, got.AvailableStock)
		assert.True(t, got.CanAddToCart)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - empty body", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/products/linen-shirt/availability", strings.NewReader(""), map[string]string{"slug": "linen-shirt"})
		rr := httptest.NewRecorder()

		// Act
		handler.CheckAvailability().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "CheckAvailability")
	})
}

func TestCreateProduct(t *testing.T) {

	valid := models.CreateProductRequest{
		CategoryID: uuid.New(),
		Name:       "Linen Shirt",
		NameAr:     "قميص كتان",
		Slug:       "linen-shirt",
		Price:      120,
		SKU:        "LIN-001",
	}

	t.Run("Success - created with toast", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		created := &models.Product{ID: uuid.New(), Slug: valid.Slug, Status: models.ProductStatusActive}
		mockService.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.CreateProductRequest")).Return(created, nil).Once()

		req := testutils.CreateTestRequestWithRole(http.MethodPost, "/api/admin/products", jsonBody(t, valid), uuid.New(), models.RoleAdmin, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		resp := decodeResponse(t, rr)
		assert.Equal(t, i18n.T(i18n.English, i18n.KeySaved), resp.Message)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - validation", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		invalid := valid
		invalid.Price = 0
		invalid.SKU = ""

		req := testutils.CreateTestRequestWithRole(http.MethodPost, "/api/admin/products", jsonBody(t, invalid), uuid.New(), models.RoleAdmin, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		resp := decodeResponse(t, rr)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		assert.Len(t, resp.Error.Details, 2)

		mockService.AssertNotCalled(t, "CreateProduct")
	})

	t.Run("Failure - unauthenticated", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/admin/products", jsonBody(t, valid), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertNotCalled(t, "CreateProduct")
	})
}

func TestDeleteProduct(t *testing.T) {

	t.Run("Failure - malformed id", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		req := testutils.CreateTestRequestWithRole(http.MethodDelete, "/api/admin/products/abc", nil, uuid.New(), models.RoleAdmin, map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		// Act
		handler.DeleteProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "DeleteProduct")
	})

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService := new(svcMocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		id := uuid.New()
		mockService.On("DeleteProduct", mock.Anything, id).Return(nil).Once()

		req := testutils.CreateTestRequestWithRole(http.MethodDelete, "/api/admin/products/"+id.String(), nil, uuid.New(), models.RoleAdmin, map[string]string{"id": id.String()})
		rr := httptest.NewRecorder()

		// Act
		handler.DeleteProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})
}
