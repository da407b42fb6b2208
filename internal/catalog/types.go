package catalog

import "github.com/shopspring/decimal"

// Product is a read-only record sourced from the remote catalog API.
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}
