package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	service "github.com/aaravmahajanofficial/apparel-storefront/internal/services"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//	@Summary		Get the current user's cart
//	@Description	Returns the cart, creating an empty one on first use.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.Cart				"Cart"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to get cart", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary		Add a product selection to the cart
//	@Description	Both size and color are required when the product has them. The quantity already in the cart counts against the available stock.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Selection"
//	@Success		200		{object}	models.CartResponse		"Updated cart with confirmation message"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid request or unknown option"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		409		{object}	response.ErrorResponse	"Out of stock or quantity limit reached"
//	@Failure		422		{object}	response.ErrorResponse	"Size or color missing"
//	@Security		BearerAuth
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		resp, err := h.cartService.AddItem(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Failed to add item to cart", slog.String("productId", req.ProductID.String()), slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.WriteJson(w, http.StatusOK, response.APIResponse{Success: true, Data: resp.Cart, Message: resp.Message})
	}
}

// UpdateQuantity godoc
//	@Summary		Change the quantity of a cart line
//	@Description	A quantity of 0 removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.UpdateQuantityRequest	true	"Line and quantity"
//	@Success		200		{object}	models.Cart						"Updated cart"
//	@Failure		404		{object}	response.ErrorResponse			"Line not in cart"
//	@Failure		409		{object}	response.ErrorResponse			"Quantity above stock"
//	@Security		BearerAuth
//	@Router			/cart/items [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Failed to update cart line", slog.String("lineKey", req.LineKey), slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.SuccessWithMessage(w, r, http.StatusOK, i18n.KeyCartUpdated, cart)
	}
}

// RemoveItem godoc
//	@Summary		Remove a cart line
//	@Tags			Cart
//	@Produce		json
//	@Param			lineKey	path		string					true	"Line key (productId|size|color, URL encoded)"
//	@Success		200		{object}	models.Cart				"Updated cart"
//	@Failure		404		{object}	response.ErrorResponse	"Line not in cart"
//	@Security		BearerAuth
//	@Router			/cart/items/{lineKey} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		lineKey := r.PathValue("lineKey")

		cart, err := h.cartService.RemoveItem(r.Context(), claims.UserID, lineKey)
		if err != nil {
			logger.Warn("Failed to remove cart line", slog.String("lineKey", lineKey), slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.SuccessWithMessage(w, r, http.StatusOK, i18n.KeyCartUpdated, cart)
	}
}
