package models

import (
	"time"

	"github.com/google/uuid"
)

type WishlistItem struct {
	UserID    uuid.UUID `json:"userId"`
	ProductID uuid.UUID `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}

// WishlistEntry is a wishlist item joined with its product view.
type WishlistEntry struct {
	ProductID uuid.UUID    `json:"productId"`
	AddedAt   time.Time    `json:"addedAt"`
	Product   *ProductView `json:"product,omitempty"`
}

type AddWishlistItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	CSRFToken string    `json:"csrfToken,omitempty"`
}

// WishlistSelection is the optional size/color a shopper picked for a
// wishlist product before moving everything to the cart.
type WishlistSelection struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Size      string    `json:"size" validate:"omitempty,max=50"`
	Color     string    `json:"color" validate:"omitempty,max=50"`
	Quantity  int       `json:"quantity" validate:"omitempty,min=1,max=100"`
}

type AddAllToCartRequest struct {
	Selections []WishlistSelection `json:"selections" validate:"dive"`
	CSRFToken  string              `json:"csrfToken,omitempty"`
}

type BulkCartItemResult struct {
	ProductID uuid.UUID `json:"productId"`
	Success   bool      `json:"success"`
	Code      string    `json:"code,omitempty"`
	Message   string    `json:"message,omitempty"`
}

type BulkCartResult struct {
	Added   int                  `json:"added"`
	Skipped int                  `json:"skipped"`
	Items   []BulkCartItemResult `json:"items"`
	Cart    *Cart                `json:"cart,omitempty"`
	Message string               `json:"message,omitempty"`
}
