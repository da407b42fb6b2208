package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Criteria describes the active filter constraints for a product list.
// An empty Category or Search imposes no constraint; the price bounds are
// always applied, inclusively.
type Criteria struct {
	Category string
	PriceMin decimal.Decimal
	PriceMax decimal.Decimal
	Search   string
}

// Filter returns the products matching all criteria, preserving input order.
// Inverted price bounds simply match nothing; there is no error case.
func Filter(products []Product, criteria Criteria) []Product {
	matched := make([]Product, 0, len(products))
	search := strings.ToLower(criteria.Search)
	for _, product := range products {
		if criteria.Category != "" && product.Category != criteria.Category {
			continue
		}
		if product.Price.LessThan(criteria.PriceMin) || product.Price.GreaterThan(criteria.PriceMax) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(product.Title), search) &&
			!strings.Contains(strings.ToLower(product.Description), search) {
			continue
		}
		matched = append(matched, product)
	}
	return matched
}

// PriceBounds returns the floor of the cheapest and the ceiling of the most
// expensive product, the defaults the storefront seeds its price sliders with.
func PriceBounds(products []Product) (decimal.Decimal, decimal.Decimal) {
	if len(products) == 0 {
		return decimal.Zero, decimal.Zero
	}
	min := products[0].Price
	max := products[0].Price
	for _, product := range products[1:] {
		if product.Price.LessThan(min) {
			min = product.Price
		}
		if product.Price.GreaterThan(max) {
			max = product.Price
		}
	}
	return min.Floor(), max.Ceil()
}

// CriteriaForCatalog builds the unconstrained default criteria for a catalog.
func CriteriaForCatalog(products []Product) Criteria {
	min, max := PriceBounds(products)
	return Criteria{PriceMin: min, PriceMax: max}
}
