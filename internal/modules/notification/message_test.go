package notification

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopflow/storefront/internal/modules/order"
)

func sampleOrder(status order.Status) *order.Order {
	return &order.Order{
		ID:          uuid.MustParse("a79ce0a1-2f4b-4f42-9a36-9d1f6f2c7b01"),
		OrderNumber: "ORD-20260828-0001",
		CreatedAt:   time.Date(2026, time.August, 28, 10, 30, 0, 0, time.UTC),
		Customer: order.CustomerInfo{
			FullName: "Jamie Rivera",
			Email:    "jamie@example.com",
			Phone:    "5551234567",
			Address:  "742 Evergreen Terrace",
			City:     "Springfield",
			State:    "IL",
			ZipCode:  "62704",
		},
		Payment: order.PaymentRecord{CardNumber: "xxxx-xxxx-xxxx-1111", ExpiryDate: "12/30"},
		Items: []order.CartLine{{
			ProductID: "1",
			Name:      "Converse Chuck Taylor All Star II Hi",
			Variant:   "Black / 9",
			Quantity:  2,
			UnitPrice: decimal.NewFromInt(85),
		}},
		Subtotal: decimal.NewFromInt(170),
		Tax:      decimal.RequireFromString("13.60"),
		Total:    decimal.RequireFromString("183.60"),
		Status:   status,
	}
}

func TestComposeMessage_Approved(t *testing.T) {
	msg, err := ComposeMessage(sampleOrder(order.StatusApproved))
	require.NoError(t, err)

	assert.Equal(t, "jamie@example.com", msg.To)
	assert.Equal(t, "Jamie Rivera", msg.ToName)
	assert.Equal(t, "Order Confirmed: #ORD-20260828-0001", msg.Subject)

	assert.Contains(t, msg.HTMLBody, "Your Order is Confirmed!")
	assert.Contains(t, msg.HTMLBody, "Dear Jamie Rivera,")
	assert.Contains(t, msg.HTMLBody, "ORD-20260828-0001")
	assert.Contains(t, msg.HTMLBody, "August 28, 2026")
	assert.Contains(t, msg.HTMLBody, "Converse Chuck Taylor All Star II Hi")
	assert.Contains(t, msg.HTMLBody, "(Black / 9)")
	assert.Contains(t, msg.HTMLBody, "$85.00")
	assert.Contains(t, msg.HTMLBody, "$170.00")
	assert.Contains(t, msg.HTMLBody, "$13.60")
	assert.Contains(t, msg.HTMLBody, "$183.60")
	assert.Contains(t, msg.HTMLBody, "Springfield, IL 62704")
}

func TestComposeMessage_Declined(t *testing.T) {
	msg, err := ComposeMessage(sampleOrder(order.StatusDeclined))
	require.NoError(t, err)

	assert.Equal(t, "Payment Declined: Order #ORD-20260828-0001", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Payment Declined")
	assert.Contains(t, msg.HTMLBody, "declined by your payment provider")
	assert.NotContains(t, msg.HTMLBody, "Order Summary")
}

func TestComposeMessage_Error(t *testing.T) {
	msg, err := ComposeMessage(sampleOrder(order.StatusError))
	require.NoError(t, err)

	assert.Equal(t, "Order Processing Error: #ORD-20260828-0001", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Order Processing Error")
	assert.Contains(t, msg.HTMLBody, "You have not been charged")
}

func TestComposeMessage_UnknownStatus(t *testing.T) {
	o := sampleOrder("refunded")
	_, err := ComposeMessage(o)
	assert.Error(t, err)
}

func TestComposeMessage_EscapesCustomerInput(t *testing.T) {
	o := sampleOrder(order.StatusApproved)
	o.Customer.FullName = `<script>alert("x")</script>`
	msg, err := ComposeMessage(o)
	require.NoError(t, err)
	assert.NotContains(t, msg.HTMLBody, "<script>")
}
