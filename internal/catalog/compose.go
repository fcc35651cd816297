package catalog

import (
	"errors"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
)

var (
	ErrUnknownOption       = errors.New("catalog: option does not exist on this product")
	ErrOptionUnavailable   = errors.New("catalog: option is out of stock for the current selection")
	ErrSelectionIncomplete = errors.New("catalog: size and color must be selected")
	ErrOutOfStock          = errors.New("catalog: selection is out of stock")
	ErrQuantityLimit       = errors.New("catalog: quantity exceeds available stock")
	ErrQuantityMinimum     = errors.New("catalog: quantity must be at least 1")
)

// RequiresSize reports whether a size must be picked before adding to cart.
func RequiresSize(p *models.Product) bool {
	return len(SizeValues(p)) > 0
}

// RequiresColor reports whether a color must be picked before adding to cart.
func RequiresColor(p *models.Product) bool {
	return len(ColorValues(p)) > 0
}

// CheckComplete returns ErrSelectionIncomplete when an axis that has options
// was left empty.
func CheckComplete(p *models.Product, size, color string) error {
	if RequiresSize(p) && size == "" {
		return ErrSelectionIncomplete
	}

	if RequiresColor(p) && color == "" {
		return ErrSelectionIncomplete
	}

	return nil
}

// ComposeCartLine validates sel against p and builds the line to hand to a
// cart. Stock is re-read from p here, so callers should pass the freshest
// product they have.
func ComposeCartLine(p *models.Product, sel models.Selection) (models.CartLine, error) {
	if err := CheckComplete(p, sel.Size, sel.Color); err != nil {
		return models.CartLine{}, err
	}

	if sel.Quantity < 1 {
		return models.CartLine{}, ErrQuantityMinimum
	}

	if !HasStock(p, sel.Size, sel.Color) {
		return models.CartLine{}, ErrOutOfStock
	}

	if sel.Quantity > AvailableStock(p, sel.Size, sel.Color) {
		return models.CartLine{}, ErrQuantityLimit
	}

	unit := EffectivePrice(p)

	line := models.CartLine{
		ProductID:     p.ID,
		Slug:          p.Slug,
		Name:          p.Name,
		NameAr:        p.NameAr,
		Price:         p.Price,
		UnitPrice:     unit,
		TotalPrice:    unit * float64(sel.Quantity),
		Image:         p.Image,
		Quantity:      sel.Quantity,
		SelectedSize:  sel.Size,
		SelectedColor: sel.Color,
	}

	if OnSale(p) {
		sale := *p.SalePrice
		line.SalePrice = &sale
	}

	return line, nil
}
