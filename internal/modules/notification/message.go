package notification

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/shopflow/storefront/internal/modules/order"
)

// Message is one rendered customer email, ready for a Provider to send.
type Message struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
}

type messageLine struct {
	Name      string
	Variant   string
	Quantity  int
	UnitPrice string
	LineTotal string
}

type messageData struct {
	OrderNumber string
	Customer    order.CustomerInfo
	Date        string
	Year        int
	Items       []messageLine
	Subtotal    string
	Tax         string
	Total       string
}

// ComposeMessage renders the outcome-specific email body for an order.
func ComposeMessage(o *order.Order) (Message, error) {
	data := messageData{
		OrderNumber: o.OrderNumber,
		Customer:    o.Customer,
		Date:        o.CreatedAt.Format("January 2, 2006"),
		Year:        o.CreatedAt.Year(),
		Subtotal:    o.Subtotal.StringFixed(2),
		Tax:         o.Tax.StringFixed(2),
		Total:       o.Total.StringFixed(2),
	}
	for _, it := range o.Items {
		data.Items = append(data.Items, messageLine{
			Name:      it.Name,
			Variant:   it.Variant,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
			LineTotal: it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))).StringFixed(2),
		})
	}

	var subject string
	switch o.Status {
	case order.StatusApproved:
		subject = fmt.Sprintf("Order Confirmed: #%s", o.OrderNumber)
	case order.StatusDeclined:
		subject = fmt.Sprintf("Payment Declined: Order #%s", o.OrderNumber)
	case order.StatusError:
		subject = fmt.Sprintf("Order Processing Error: #%s", o.OrderNumber)
	default:
		return Message{}, fmt.Errorf("unknown order status %q", o.Status)
	}

	var body bytes.Buffer
	if err := messageTmpl.ExecuteTemplate(&body, string(o.Status), data); err != nil {
		return Message{}, fmt.Errorf("render %s email: %w", o.Status, err)
	}
	return Message{
		To:       o.Customer.Email,
		ToName:   o.Customer.FullName,
		Subject:  subject,
		HTMLBody: body.String(),
	}, nil
}

var messageTmpl = template.Must(template.New("email").Parse(emailTemplates))

const emailTemplates = `
{{define "header"}}
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background-color: #3B82F6; padding: 20px; text-align: center; color: white;">
    <h1>ShopFlow</h1>
  </div>
  <div style="padding: 20px; border: 1px solid #e5e5e5; border-top: none;">
{{end}}

{{define "footer"}}
  </div>
  <div style="padding: 20px; text-align: center; color: #666; font-size: 12px;">
    <p>&copy; {{.Year}} ShopFlow. All rights reserved.</p>
    <p>If you have any questions, please contact our support team at support@shopflow.com</p>
  </div>
</div>
{{end}}

{{define "summary"}}
<h3>Order Summary</h3>
<table style="width: 100%; border-collapse: collapse;">
  <thead>
    <tr style="background-color: #f3f4f6;">
      <th style="padding: 10px; text-align: left;">Product</th>
      <th style="padding: 10px; text-align: left;">Qty</th>
      <th style="padding: 10px; text-align: left;">Price</th>
      <th style="padding: 10px; text-align: left;">Total</th>
    </tr>
  </thead>
  <tbody>
    {{range .Items}}
    <tr>
      <td style="padding: 10px; border-bottom: 1px solid #e5e5e5;">{{.Name}}{{if .Variant}} ({{.Variant}}){{end}}</td>
      <td style="padding: 10px; border-bottom: 1px solid #e5e5e5;">{{.Quantity}}</td>
      <td style="padding: 10px; border-bottom: 1px solid #e5e5e5;">${{.UnitPrice}}</td>
      <td style="padding: 10px; border-bottom: 1px solid #e5e5e5;">${{.LineTotal}}</td>
    </tr>
    {{end}}
  </tbody>
  <tfoot>
    <tr><td colspan="3" style="padding: 10px; text-align: right;"><strong>Subtotal:</strong></td><td style="padding: 10px;">${{.Subtotal}}</td></tr>
    <tr><td colspan="3" style="padding: 10px; text-align: right;"><strong>Tax:</strong></td><td style="padding: 10px;">${{.Tax}}</td></tr>
    <tr><td colspan="3" style="padding: 10px; text-align: right;"><strong>Total:</strong></td><td style="padding: 10px;"><strong>${{.Total}}</strong></td></tr>
  </tfoot>
</table>
{{end}}

{{define "approved"}}
{{template "header" .}}
<h2 style="color: #10B981;">Your Order is Confirmed!</h2>
<p>Dear {{.Customer.FullName}},</p>
<p>Thank you for your purchase. We're pleased to confirm that your order has been received and is being processed.</p>
<h3>Order Details</h3>
<p><strong>Order Number:</strong> {{.OrderNumber}}</p>
<p><strong>Order Date:</strong> {{.Date}}</p>
<h3>Shipping Information</h3>
<p>{{.Customer.FullName}}<br>
{{.Customer.Address}}<br>
{{.Customer.City}}, {{.Customer.State}} {{.Customer.ZipCode}}<br>
{{.Customer.Phone}}</p>
{{template "summary" .}}
{{template "footer" .}}
{{end}}

{{define "declined"}}
{{template "header" .}}
<h2 style="color: #EF4444;">Payment Declined</h2>
<p>Dear {{.Customer.FullName}},</p>
<p>We regret to inform you that your payment for order #{{.OrderNumber}} has been declined by your payment provider.</p>
<h3>What to do next:</h3>
<ul>
  <li>Check that your payment details are correct</li>
  <li>Ensure you have sufficient funds available</li>
  <li>Try again with a different payment method</li>
  <li>Contact your bank if the issue persists</li>
</ul>
<p>For assistance, please contact our customer support team at support@shopflow.com.</p>
{{template "footer" .}}
{{end}}

{{define "error"}}
{{template "header" .}}
<h2 style="color: #FBBF24;">Order Processing Error</h2>
<p>Dear {{.Customer.FullName}},</p>
<p>We encountered an unexpected error while processing your order #{{.OrderNumber}}.</p>
<p>Our technical team has been notified and is working to resolve the issue. You have not been charged for this transaction.</p>
<h3>What to do next:</h3>
<ul>
  <li>Please try again in a few minutes</li>
  <li>If the problem persists, try using a different payment method</li>
  <li>Contact our customer support for immediate assistance</li>
</ul>
<p>We apologize for any inconvenience this may have caused.</p>
{{template "footer" .}}
{{end}}
`
