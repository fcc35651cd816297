package catalog

import (
	"sort"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
)

// SizeValues lists the distinct sizes a product offers, in display order.
func SizeValues(p *models.Product) []string {
	return axisValues(p, models.VariantTypeSize)
}

// ColorValues lists the distinct colors a product offers, in display order.
func ColorValues(p *models.Product) []string {
	return axisValues(p, models.VariantTypeColor)
}

// SizeOptions marks each size available when any of its stock remains.
func SizeOptions(p *models.Product) []models.Option {
	values := SizeValues(p)
	opts := make([]models.Option, 0, len(values))

	for _, v := range values {
		opts = append(opts, models.Option{
			Value:     v,
			ValueAr:   arabicValue(p, models.VariantTypeSize, v),
			Available: HasStock(p, v, ""),
		})
	}

	return opts
}

// ColorOptions marks each color available against the currently selected
// size (or against any size when none is selected).
func ColorOptions(p *models.Product, size string) []models.Option {
	values := ColorValues(p)
	opts := make([]models.Option, 0, len(values))

	for _, v := range values {
		opts = append(opts, models.Option{
			Value:     v,
			ValueAr:   arabicValue(p, models.VariantTypeColor, v),
			Hex:       ColorHex(v),
			Available: HasStock(p, size, v),
		})
	}

	return opts
}

// View builds the storefront projection of p with nothing selected.
func View(p *models.Product) *models.ProductView {
	return &models.ProductView{
		Product:        p,
		EffectivePrice: EffectivePrice(p),
		OnSale:         OnSale(p),
		InStock:        inStock(p),
		SizeOptions:    SizeOptions(p),
		ColorOptions:   ColorOptions(p, ""),
	}
}

// inStock is true when any sellable unit exists. Combination products ignore
// the whole-product quantity.
func inStock(p *models.Product) bool {
	if len(p.VariantCombinations) > 0 {
		for _, row := range p.VariantCombinations {
			if row.Stock > 0 {
				return true
			}
		}

		return false
	}

	return p.StockQuantity > 0
}

func axisValues(p *models.Product, typ models.VariantType) []string {
	seen := make(map[string]bool)

	var values []string

	add := func(v string) {
		if v == "" || seen[v] {
			return
		}

		seen[v] = true
		values = append(values, v)
	}

	if len(p.VariantCombinations) > 0 {
		rows := make([]models.VariantCombination, len(p.VariantCombinations))
		copy(rows, p.VariantCombinations)
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].SortOrder < rows[j].SortOrder })

		for _, row := range rows {
			if typ == models.VariantTypeSize {
				add(row.Size)
			} else {
				add(row.Color)
			}
		}

		return values
	}

	for _, v := range p.Variants {
		if v.Type == typ {
			add(v.Value)
		}
	}

	return values
}

func arabicValue(p *models.Product, typ models.VariantType, value string) string {
	if v, ok := findVariant(p.Variants, typ, value); ok {
		return v.ValueAr
	}

	return ""
}
