package catalog

import (
	"github.com/shopspring/decimal"
)

// Variant is one named axis of product variation, e.g. Color or Size,
// with its selectable option labels in display order.
type Variant struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// Product is a storefront product with its live inventory count.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images,omitempty"`
	Variants    []Variant       `json:"variants,omitempty"`
	Inventory   int             `json:"inventory"`
}
