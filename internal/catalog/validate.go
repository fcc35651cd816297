package catalog

import (
	"fmt"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
)

// ValidateProduct checks the cross-field rules struct tags cannot express. It
// returns one message per problem, or nil.
func ValidateProduct(p *models.Product) []string {
	var problems []string

	if p.SalePrice != nil && *p.SalePrice > 0 && *p.SalePrice >= p.Price {
		problems = append(problems, "salePrice must be lower than price")
	}

	if p.StockQuantity < 0 {
		problems = append(problems, "stockQuantity must not be negative")
	}

	seen := make(map[[2]string]bool)

	for i, row := range p.VariantCombinations {
		if row.Size == "" && row.Color == "" {
			problems = append(problems, fmt.Sprintf("variantCombinations[%d] needs a size or a color", i))
		}

		if row.Stock < 0 {
			problems = append(problems, fmt.Sprintf("variantCombinations[%d].stock must not be negative", i))
		}

		key := [2]string{row.Size, row.Color}
		if seen[key] {
			problems = append(problems, fmt.Sprintf("variantCombinations[%d] duplicates size %q color %q", i, row.Size, row.Color))
		}

		seen[key] = true
	}

	for i, v := range p.Variants {
		if v.Stock != nil && *v.Stock < 0 {
			problems = append(problems, fmt.Sprintf("variants[%d].stock must not be negative", i))
		}
	}

	return problems
}
