package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	service "github.com/aaravmahajanofficial/apparel-storefront/internal/services"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

// ListProducts godoc
//	@Summary		List active products
//	@Description	Paginated storefront listing with derived size and color options.
//	@Tags			Products
//	@Produce		json
//	@Param			page		query		int													false	"Page number (default: 1)"				minimum(1)
//	@Param			pageSize	query		int													false	"Items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Param			category	query		string												false	"Category slug"
//	@Param			lang		query		string												false	"Response language"	Enums(en, ar)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.ProductView}	"Products"
//	@Failure		500			{object}	response.ErrorResponse								"Internal server error"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := utils.ParsePagination(r)

		filter := models.ProductFilter{
			CategorySlug: r.URL.Query().Get("category"),
			Status:       models.ProductStatusActive,
			Page:         page,
			PageSize:     pageSize,
		}

		products, total, err := h.productService.ListProducts(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{Data: products, Total: total, Page: page, PageSize: pageSize})
	}
}

// GetProduct godoc
//	@Summary		Get a product by slug
//	@Tags			Products
//	@Produce		json
//	@Param			slug	path		string					true	"Product slug"
//	@Success		200		{object}	models.ProductView		"Product"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/products/{slug} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("slug", slug))

		product, err := h.productService.GetProductBySlug(r.Context(), slug)
		if err != nil {
			logger.Warn("Failed to get product", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// CheckAvailability godoc
//	@Summary		Evaluate a size/color/quantity selection
//	@Description	Applies the size, then the color, then the quantity and reports what the shopper can add. Selection problems are reported in the message, never as errors.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			slug		path		string						true	"Product slug"
//	@Param			selection	body		models.AvailabilityRequest	true	"Current selection"
//	@Success		200			{object}	models.AvailabilityResponse	"Availability"
//	@Failure		400			{object}	response.ErrorResponse		"Invalid request"
//	@Failure		404			{object}	response.ErrorResponse		"Product not found"
//	@Router			/products/{slug}/availability [post]
func (h *ProductHandler) CheckAvailability() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("slug", slug))

		var req models.AvailabilityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid availability input")
			return
		}

		resp, err := h.productService.CheckAvailability(r.Context(), slug, &req)
		if err != nil {
			logger.Warn("Availability check failed", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// ListCategories godoc
//	@Summary		List categories
//	@Tags			Products
//	@Produce		json
//	@Success		200	{array}		models.Category			"Categories"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/categories [get]
func (h *ProductHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.productService.ListCategories(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list categories", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// AdminListProducts godoc
//	@Summary		List products in any status
//	@Tags			Admin
//	@Produce		json
//	@Param			page		query		int													false	"Page number"
//	@Param			pageSize	query		int													false	"Items per page"
//	@Param			status		query		string												false	"Status filter"	Enums(active, inactive, archived)
//	@Param			category	query		string												false	"Category slug"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.ProductView}	"Products"
//	@Failure		401			{object}	response.ErrorResponse								"Authentication required"
//	@Failure		403			{object}	response.ErrorResponse								"Admin role required"
//	@Security		BearerAuth
//	@Router			/admin/products [get]
func (h *ProductHandler) AdminListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		page, pageSize := utils.ParsePagination(r)

		filter := models.ProductFilter{
			CategorySlug: r.URL.Query().Get("category"),
			Status:       r.URL.Query().Get("status"),
			Page:         page,
			PageSize:     pageSize,
		}

		products, total, err := h.productService.ListProducts(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{Data: products, Total: total, Page: page, PageSize: pageSize})
	}
}

// CreateProduct godoc
//	@Summary		Create a product
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product"
//	@Success		201		{object}	models.Product				"Created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse		"Admin role or CSRF token missing"
//	@Security		BearerAuth
//	@Router			/admin/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		logger.Info("Product created successfully", slog.String("productId", product.ID.String()))
		response.SuccessWithMessage(w, r, http.StatusCreated, i18n.KeySaved, product)
	}
}

// UpdateProduct godoc
//	@Summary		Update a product
//	@Description	Partial update. A salePrice of 0 clears the sale.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID"	Format(uuid)
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	models.Product				"Updated"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Security		BearerAuth
//	@Router			/admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.LocalizedError(w, r, err)
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update product input")
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.String("productId", id.String()), slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		logger.Info("Product updated successfully", slog.String("productId", id.String()))
		response.SuccessWithMessage(w, r, http.StatusOK, i18n.KeySaved, product)
	}
}

// DeleteProduct godoc
//	@Summary		Delete a product
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"	Format(uuid)
//	@Success		200	{object}	response.APIResponse	"Deleted"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.LocalizedError(w, r, err)
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			logger.Error("Failed to delete product", slog.String("productId", id.String()), slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		logger.Info("Product deleted", slog.String("productId", id.String()))
		response.SuccessWithMessage(w, r, http.StatusOK, i18n.KeyDeleted, nil)
	}
}

// CreateCategory godoc
//	@Summary		Create a category
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			category	body		models.CreateCategoryRequest	true	"Category"
//	@Success		201			{object}	models.Category					"Created"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Security		BearerAuth
//	@Router			/admin/categories [post]
func (h *ProductHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.CreateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		category, err := h.productService.CreateCategory(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create category", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.SuccessWithMessage(w, r, http.StatusCreated, i18n.KeySaved, category)
	}
}

// DeleteCategory godoc
//	@Summary		Delete a category
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string					true	"Category ID"	Format(uuid)
//	@Success		200	{object}	response.APIResponse	"Deleted"
//	@Failure		404	{object}	response.ErrorResponse	"Category not found"
//	@Security		BearerAuth
//	@Router			/admin/categories/{id} [delete]
func (h *ProductHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.LocalizedError(w, r, err)
			return
		}

		if err := h.productService.DeleteCategory(r.Context(), id); err != nil {
			logger.Error("Failed to delete category", slog.String("categoryId", id.String()), slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.SuccessWithMessage(w, r, http.StatusOK, i18n.KeyDeleted, nil)
	}
}
