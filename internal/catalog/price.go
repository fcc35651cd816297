package catalog

import "github.com/aaravmahajanofficial/apparel-storefront/internal/models"

// OnSale reports whether the sale price applies: it must be set, positive
// and below the list price.
func OnSale(p *models.Product) bool {
	return p.SalePrice != nil && *p.SalePrice > 0 && *p.SalePrice < p.Price
}

// EffectivePrice is the price a cart line is charged at.
func EffectivePrice(p *models.Product) float64 {
	if OnSale(p) {
		return *p.SalePrice
	}

	return p.Price
}
