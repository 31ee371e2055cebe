package order

import (
	"github.com/shopspring/decimal"
)

// Totals is the computed money breakdown for a cart, rounded to cents.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// computeTotals prices a cart: subtotal is the sum of line totals, tax is
// subtotal times the rate rounded to cents, total is their sum. Pure function;
// all arithmetic is fixed-point so repeated checkouts never drift.
func computeTotals(items []CartLine, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
