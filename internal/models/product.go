package models

import (
	"time"

	"github.com/google/uuid"
)

type VariantType string

const (
	VariantTypeSize  VariantType = "SIZE"
	VariantTypeColor VariantType = "COLOR"
)

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
	ProductStatusArchived = "archived"
)

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	NameAr      string    `json:"nameAr"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Variant is the legacy flat attribute row. Stock is optional and may sit on
// either axis depending on how the product was entered.
type Variant struct {
	Type    VariantType `json:"type" validate:"required,oneof=SIZE COLOR"`
	Value   string      `json:"value" validate:"required,max=50"`
	ValueAr string      `json:"valueAr,omitempty" validate:"omitempty,max=50"`
	Stock   *int        `json:"stock,omitempty" validate:"omitempty,gte=0"`
}

// VariantCombination is one size x color row with its own stock. When a
// product has any, they are authoritative over Variants.
type VariantCombination struct {
	ID        uuid.UUID `json:"id"`
	Size      string    `json:"size,omitempty" validate:"omitempty,max=50"`
	Color     string    `json:"color,omitempty" validate:"omitempty,max=50"`
	Stock     int       `json:"stock" validate:"gte=0"`
	SortOrder int       `json:"sortOrder"`
}

type Product struct {
	ID                  uuid.UUID            `json:"id"`
	CategoryID          uuid.UUID            `json:"categoryId"`
	Name                string               `json:"name"`
	NameAr              string               `json:"nameAr"`
	Slug                string               `json:"slug"`
	Description         string               `json:"description"`
	DescriptionAr       string               `json:"descriptionAr"`
	Price               float64              `json:"price"`
	SalePrice           *float64             `json:"salePrice,omitempty"`
	StockQuantity       int                  `json:"stockQuantity"`
	SKU                 string               `json:"sku"`
	Image               string               `json:"image"`
	Status              string               `json:"status"`
	Variants            []Variant            `json:"variants"`
	VariantCombinations []VariantCombination `json:"variantCombinations"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
	Category            *Category            `json:"category,omitempty"`
}

type ProductFilter struct {
	CategorySlug string
	Status       string
	Page         int
	PageSize     int
}

type CreateProductRequest struct {
	CategoryID          uuid.UUID            `json:"categoryId" validate:"required"`
	Name                string               `json:"name" validate:"required,min=2,max=200"`
	NameAr              string               `json:"nameAr" validate:"required,min=2,max=200"`
	Slug                string               `json:"slug" validate:"required,min=2,max=200"`
	Description         string               `json:"description"`
	DescriptionAr       string               `json:"descriptionAr"`
	Price               float64              `json:"price" validate:"required,gt=0"`
	SalePrice           *float64             `json:"salePrice,omitempty" validate:"omitempty,gte=0"`
	StockQuantity       int                  `json:"stockQuantity" validate:"gte=0"`
	SKU                 string               `json:"sku" validate:"required,min=3,max=50"`
	Image               string               `json:"image" validate:"omitempty,max=500"`
	Variants            []Variant            `json:"variants" validate:"dive"`
	VariantCombinations []VariantCombination `json:"variantCombinations" validate:"dive"`
	CSRFToken           string               `json:"csrfToken,omitempty"`
}

type UpdateProductRequest struct {
	CategoryID          *uuid.UUID            `json:"categoryId,omitempty"`
	Name                *string               `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	NameAr              *string               `json:"nameAr,omitempty" validate:"omitempty,min=2,max=200"`
	Description         *string               `json:"description,omitempty"`
	DescriptionAr       *string               `json:"descriptionAr,omitempty"`
	Price               *float64              `json:"price,omitempty" validate:"omitempty,gt=0"`
	SalePrice           *float64              `json:"salePrice,omitempty" validate:"omitempty,gte=0"`
	StockQuantity       *int                  `json:"stockQuantity,omitempty" validate:"omitempty,gte=0"`
	Image               *string               `json:"image,omitempty" validate:"omitempty,max=500"`
	Status              *string               `json:"status,omitempty" validate:"omitempty,oneof=active inactive archived"`
	Variants            *[]Variant            `json:"variants,omitempty"`
	VariantCombinations *[]VariantCombination `json:"variantCombinations,omitempty"`
	CSRFToken           string                `json:"csrfToken,omitempty"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	NameAr      string `json:"nameAr" validate:"required,min=2,max=100"`
	Slug        string `json:"slug" validate:"required,min=2,max=100"`
	Description string `json:"description"`
	CSRFToken   string `json:"csrfToken,omitempty"`
}

// Option is one selectable value on a variant axis.
type Option struct {
	Value     string `json:"value"`
	ValueAr   string `json:"valueAr,omitempty"`
	Hex       string `json:"hex,omitempty"`
	Available bool   `json:"available"`
}

// ProductView is the storefront projection of a product.
type ProductView struct {
	*Product
	EffectivePrice float64  `json:"effectivePrice"`
	OnSale         bool     `json:"onSale"`
	InStock        bool     `json:"inStock"`
	SizeOptions    []Option `json:"sizeOptions"`
	ColorOptions   []Option `json:"colorOptions"`
}

type Selection struct {
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

type AvailabilityRequest struct {
	Size     string `json:"size" validate:"omitempty,max=50"`
	Color    string `json:"color" validate:"omitempty,max=50"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
}

type AvailabilityResponse struct {
	Selection      Selection `json:"selection"`
	HasStock       bool      `json:"hasStock"`
	AvailableStock int       `json:"availableStock"`
	CanAddToCart   bool      `json:"canAddToCart"`
	SizeOptions    []Option  `json:"sizeOptions"`
	ColorOptions   []Option  `json:"colorOptions"`
	Message        string    `json:"message,omitempty"`
}
