package models

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is one product/size/color entry in a cart.
type CartLine struct {
	ProductID     uuid.UUID `json:"productId"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	NameAr        string    `json:"nameAr"`
	Price         float64   `json:"price"`
	SalePrice     *float64  `json:"salePrice,omitempty"`
	UnitPrice     float64   `json:"unitPrice"`
	TotalPrice    float64   `json:"totalPrice"`
	Image         string    `json:"image"`
	Quantity      int       `json:"quantity"`
	SelectedSize  string    `json:"selectedSize,omitempty"`
	SelectedColor string    `json:"selectedColor,omitempty"`
}

func (l CartLine) Key() string {
	return LineKey(l.ProductID, l.SelectedSize, l.SelectedColor)
}

// LineKey identifies a cart line; the same product in two sizes is two lines.
func LineKey(productID uuid.UUID, size, color string) string {
	return productID.String() + "|" + size + "|" + color
}

type Cart struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"userId"`
	Items     map[string]CartLine `json:"items"`
	Total     float64             `json:"total"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

type AddItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Size      string    `json:"size" validate:"omitempty,max=50"`
	Color     string    `json:"color" validate:"omitempty,max=50"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=100"`
	CSRFToken string    `json:"csrfToken,omitempty"`
}

type UpdateQuantityRequest struct {
	LineKey   string `json:"lineKey" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=0,max=100"`
	CSRFToken string `json:"csrfToken,omitempty"`
}

// CartResponse carries the toast text alongside the cart.
type CartResponse struct {
	Cart    *Cart  `json:"cart"`
	Message string `json:"message,omitempty"`
}
