package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the terminal outcome of an order's payment attempt. It is decided
// once at creation time and never changes afterwards.
type Status string

const (
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
	StatusError    Status = "error"
)

// CustomerInfo is the customer's contact and shipping details, captured per
// order. Customers are not deduplicated or stored as reusable entities.
type CustomerInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}

// PaymentInfo is the raw card data submitted at checkout. The CVV is consumed
// by the payment decision and never stored; the card number is masked before
// the order record is built.
type PaymentInfo struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"` // MM/YY
	CVV        string `json:"cvv"`
}

// PaymentRecord is the payment sub-record persisted on an order: a masked
// card number and the expiry only.
type PaymentRecord struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
}

// CartLine is a denormalised snapshot of one product+variant selection at the
// moment of purchase. Name and price are copied from the catalog at submit
// time so later catalog edits cannot rewrite order history.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image,omitempty"`
	Variant   string          `json:"variant,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Order is an immutable record of one checkout attempt. Orders are append
// only: created once, never updated or deleted.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"order_number"`
	CreatedAt   time.Time       `json:"created_at"`
	Customer    CustomerInfo    `json:"customer"`
	Payment     PaymentRecord   `json:"payment"`
	Items       []CartLine      `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
	Status      Status          `json:"status"`
}

// CartLineRequest names a product+variant selection in a checkout request.
// Price and name are resolved from the catalog server-side.
type CartLineRequest struct {
	ProductID string `json:"product_id"`
	Variant   string `json:"variant,omitempty"`
	Quantity  int    `json:"quantity"`
}

// SubmitOrderRequest is the payload for placing an order.
type SubmitOrderRequest struct {
	Customer CustomerInfo      `json:"customer"`
	Payment  PaymentInfo       `json:"payment"`
	Items    []CartLineRequest `json:"items"`
}
