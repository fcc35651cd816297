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

type WishlistHandler struct {
	wishlistService service.WishlistService
	validator       *validator.Validate
}

func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService, validator: validator.New()}
}

// ListItems godoc
//	@Summary		List the wishlist
//	@Tags			Wishlist
//	@Produce		json
//	@Success		200	{array}		models.WishlistEntry	"Wishlist"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/account/wishlist [get]
func (h *WishlistHandler) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		entries, err := h.wishlistService.ListItems(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list wishlist", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, entries)
	}
}

// AddItem godoc
//	@Summary		Save a product to the wishlist
//	@Tags			Wishlist
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddWishlistItemRequest	true	"Product"
//	@Success		201		{object}	response.APIResponse			"Saved"
//	@Failure		404		{object}	response.ErrorResponse			"Product not found"
//	@Security		BearerAuth
//	@Router			/account/wishlist [post]
func (h *WishlistHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.AddWishlistItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.wishlistService.AddItem(r.Context(), claims.UserID, req.ProductID); err != nil {
			logger.Warn("Failed to add wishlist item", slog.String("productId", req.ProductID.String()), slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.SuccessWithMessage(w, r, http.StatusCreated, i18n.KeyWishlistAdded, nil)
	}
}

// RemoveItem godoc
//	@Summary		Remove a product from the wishlist
//	@Tags			Wishlist
//	@Produce		json
//	@Param			productId	path		string					true	"Product ID"	Format(uuid)
//	@Success		200			{object}	response.APIResponse	"Removed"
//	@Failure		404			{object}	response.ErrorResponse	"Not in wishlist"
//	@Security		BearerAuth
//	@Router			/account/wishlist/{productId} [delete]
func (h *WishlistHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		productID, err := utils.ParseID(r, "productId")
		if err != nil {
			response.LocalizedError(w, r, err)
			return
		}

		if err := h.wishlistService.RemoveItem(r.Context(), claims.UserID, productID); err != nil {
			logger.Warn("Failed to remove wishlist item", slog.String("productId", productID.String()), slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		response.SuccessWithMessage(w, r, http.StatusOK, i18n.KeyWishlistRemoved, nil)
	}
}

// AddAllToCart godoc
//	@Summary		Move wishlist products to the cart
//	@Description	Items are added one at a time. Items missing a size or color, or out of stock, are reported per item and do not fail the request.
//	@Tags			Wishlist
//	@Accept			json
//	@Produce		json
//	@Param			selections	body		models.AddAllToCartRequest	true	"Optional per-product selections"
//	@Success		200			{object}	models.BulkCartResult		"Per-item outcome and the cart"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/account/wishlist/cart [post]
func (h *WishlistHandler) AddAllToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.AddAllToCartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		result, err := h.wishlistService.AddAllToCart(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to move wishlist to cart", slog.Any("error", err))
			response.LocalizedError(w, r, err)
			return
		}

		logger.Info("Wishlist moved to cart", slog.Int("added", result.Added), slog.Int("skipped", result.Skipped))
		response.WriteJson(w, http.StatusOK, response.APIResponse{Success: true, Data: result, Message: result.Message})
	}
}
