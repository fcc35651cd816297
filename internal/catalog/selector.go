package catalog

import (
	"context"
	"errors"
	"slices"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
)

// CartStore receives composed lines. It is owned by the caller.
type CartStore interface {
	AddLine(ctx context.Context, line models.CartLine) error
}

// Result is the outcome of Selector.AddToCart. A false Success with an empty
// Message means the stock check failed and nothing was written.
type Result struct {
	Success bool
	Message string
	Line    models.CartLine
}

// Selector tracks a shopper's size/color/quantity choice for one product.
//
// Picking a size clears a color that has no stock in that size, including
// when the size itself is sold out. Picking a
// color never clears the size; an unavailable color is simply rejected.
type Selector struct {
	product  *models.Product
	size     string
	color    string
	quantity int
}

func NewSelector(p *models.Product) *Selector {
	return &Selector{product: p, quantity: 1}
}

func (s *Selector) Selection() models.Selection {
	return models.Selection{Size: s.size, Color: s.color, Quantity: s.quantity}
}

// Available is the stock ceiling for the current selection.
func (s *Selector) Available() int {
	return AvailableStock(s.product, s.size, s.color)
}

func (s *Selector) HasStock() bool {
	return HasStock(s.product, s.size, s.color)
}

func (s *Selector) SizeOptions() []models.Option {
	return SizeOptions(s.product)
}

func (s *Selector) ColorOptions() []models.Option {
	return ColorOptions(s.product, s.size)
}

// SelectSize picks size, or clears it when size is empty. A size without
// stock is still selected so the color reset below applies to it.
func (s *Selector) SelectSize(size string) error {
	if size == "" {
		s.size = ""
		s.clampQuantity()

		return nil
	}

	if !slices.Contains(SizeValues(s.product), size) {
		return ErrUnknownOption
	}

	s.size = size

	if s.color != "" && !HasStock(s.product, s.size, s.color) {
		s.color = ""
	}

	s.clampQuantity()

	return nil
}

// SelectColor picks color, or clears it when color is empty. The size is
// left as is even when the color would suit another size better.
func (s *Selector) SelectColor(color string) error {
	if color == "" {
		s.color = ""
		s.clampQuantity()

		return nil
	}

	if !slices.Contains(ColorValues(s.product), color) {
		return ErrUnknownOption
	}

	if !HasStock(s.product, s.size, color) {
		return ErrOptionUnavailable
	}

	s.color = color
	s.clampQuantity()

	return nil
}

// SetQuantity rejects out-of-range values without changing the selection.
func (s *Selector) SetQuantity(q int) error {
	if q < 1 {
		return ErrQuantityMinimum
	}

	if q > s.Available() {
		return ErrQuantityLimit
	}

	s.quantity = q

	return nil
}

// Increment is a no-op once the quantity has reached the available stock.
func (s *Selector) Increment() error {
	if s.quantity >= s.Available() {
		return ErrQuantityLimit
	}

	s.quantity++

	return nil
}

// Decrement is a no-op at 1.
func (s *Selector) Decrement() error {
	if s.quantity <= 1 {
		return ErrQuantityMinimum
	}

	s.quantity--

	return nil
}

// Ready reports whether every axis with options has been picked.
func (s *Selector) Ready() error {
	return CheckComplete(s.product, s.size, s.color)
}

// AddToCart composes the line for the current selection and hands it to
// store. A failed stock check returns a zero Result and a nil error, leaving
// both the store and the selection untouched. On success the selection is
// reset and Result.Message holds the localized confirmation.
func (s *Selector) AddToCart(ctx context.Context, store CartStore) (Result, error) {
	if err := s.Ready(); err != nil {
		return Result{}, err
	}

	line, err := ComposeCartLine(s.product, s.Selection())
	if err != nil {
		if errors.Is(err, ErrOutOfStock) {
			return Result{}, nil
		}

		return Result{}, err
	}

	if err := store.AddLine(ctx, line); err != nil {
		return Result{}, err
	}

	s.Reset()

	return Result{Success: true, Message: i18n.TC(ctx, i18n.KeyAddedToCart), Line: line}, nil
}

func (s *Selector) Reset() {
	s.size = ""
	s.color = ""
	s.quantity = 1
}

func (s *Selector) clampQuantity() {
	if avail := s.Available(); avail > 0 && s.quantity > avail {
		s.quantity = avail
	}
}
