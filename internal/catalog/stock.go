// Package catalog resolves variant stock, selectable options and cart lines
// for a product. Every call site (product page, cart, wishlist) goes through
// it, so the rules below are the only copy of the storefront's stock logic.
package catalog

import "github.com/aaravmahajanofficial/apparel-storefront/internal/models"

// HasStock reports whether the selection has stock. Empty strings mean the
// axis is not selected.
//
// When the product has variant combinations they are authoritative: an exact
// pair is decided by the first matching row (no row means no stock), a single
// axis is in stock when any row on it is. Older products fall back to the flat
// variant list, see legacyHasStock.
func HasStock(p *models.Product, size, color string) bool {
	if size == "" && color == "" {
		return p.StockQuantity > 0
	}

	if len(p.VariantCombinations) > 0 {
		return combinationHasStock(p.VariantCombinations, size, color)
	}

	return legacyHasStock(p, size, color)
}

// AvailableStock returns the quantity ceiling for the selection. An exact
// pair yields the first matching row's stock, a single axis yields the sum of
// every matching row. The result is never negative.
func AvailableStock(p *models.Product, size, color string) int {
	var n int

	switch {
	case size == "" && color == "":
		n = p.StockQuantity
	case len(p.VariantCombinations) > 0:
		n = combinationStock(p.VariantCombinations, size, color)
	default:
		n = legacyAvailableStock(p, size, color)
	}

	return max(n, 0)
}

func combinationHasStock(rows []models.VariantCombination, size, color string) bool {
	if size != "" && color != "" {
		row, ok := exactRow(rows, size, color)

		return ok && row.Stock > 0
	}

	for _, row := range rows {
		if matchesAxis(row, size, color) && row.Stock > 0 {
			return true
		}
	}

	return false
}

func combinationStock(rows []models.VariantCombination, size, color string) int {
	if size != "" && color != "" {
		row, ok := exactRow(rows, size, color)
		if !ok {
			return 0
		}

		return row.Stock
	}

	total := 0

	for _, row := range rows {
		if matchesAxis(row, size, color) && row.Stock > 0 {
			total += row.Stock
		}
	}

	return total
}

// exactRow returns the first row for the pair. Duplicate pairs are malformed
// input; only the first one is ever read.
func exactRow(rows []models.VariantCombination, size, color string) (models.VariantCombination, bool) {
	for _, row := range rows {
		if row.Size == size && row.Color == color {
			return row, true
		}
	}

	return models.VariantCombination{}, false
}

// matchesAxis matches a row on whichever single axis is selected.
func matchesAxis(row models.VariantCombination, size, color string) bool {
	if size != "" {
		return row.Size == size
	}

	return row.Color == color
}

// legacyHasStock applies the size-before-color rule: a SIZE variant carrying
// a stock figure decides, then a COLOR variant carrying one, and only then the
// whole-product quantity.
func legacyHasStock(p *models.Product, size, color string) bool {
	if size != "" {
		if v, ok := findVariant(p.Variants, models.VariantTypeSize, size); ok && v.Stock != nil {
			return *v.Stock > 0
		}
	}

	if color != "" {
		if v, ok := findVariant(p.Variants, models.VariantTypeColor, color); ok && v.Stock != nil {
			return *v.Stock > 0
		}
	}

	return p.StockQuantity > 0
}

// legacyAvailableStock reads the first variant, in list order, that matches
// the selected size or color.
func legacyAvailableStock(p *models.Product, size, color string) int {
	for _, v := range p.Variants {
		sizeHit := size != "" && v.Type == models.VariantTypeSize && v.Value == size
		colorHit := color != "" && v.Type == models.VariantTypeColor && v.Value == color

		if !sizeHit && !colorHit {
			continue
		}

		if v.Stock != nil {
			return *v.Stock
		}

		return p.StockQuantity
	}

	return p.StockQuantity
}

func findVariant(variants []models.Variant, typ models.VariantType, value string) (models.Variant, bool) {
	for _, v := range variants {
		if v.Type == typ && v.Value == value {
			return v, true
		}
	}

	return models.Variant{}, false
}
