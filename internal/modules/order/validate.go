package order

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ValidationError reports per-field problems with a checkout request. The
// core is never invoked when validation fails.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	return fmt.Sprintf("invalid checkout request: %s", strings.Join(keys, ", "))
}

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
	cvvPattern    = regexp.MustCompile(`^\d{1,4}$`)
	nonDigit      = regexp.MustCompile(`\D`)
)

func digitsOnly(s string) string { return nonDigit.ReplaceAllString(s, "") }

// validateCheckout applies the storefront's form rules server-side. It
// returns a field name to message map, empty when the request is well formed.
func validateCheckout(req SubmitOrderRequest, now time.Time) map[string]string {
	errs := make(map[string]string)

	c := req.Customer
	if c.FullName == "" {
		errs["full_name"] = "Full name is required"
	}
	switch {
	case c.Email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(c.Email):
		errs["email"] = "Invalid email format"
	}
	switch {
	case c.Phone == "":
		errs["phone"] = "Phone number is required"
	case len(digitsOnly(c.Phone)) != 10:
		errs["phone"] = "Phone number must be 10 digits"
	}
	if c.Address == "" {
		errs["address"] = "Address is required"
	}
	if c.City == "" {
		errs["city"] = "City is required"
	}
	if c.State == "" {
		errs["state"] = "State is required"
	}
	if c.ZipCode == "" {
		errs["zip_code"] = "ZIP code is required"
	}

	p := req.Payment
	switch {
	case p.CardNumber == "":
		errs["card_number"] = "Card number is required"
	case len(digitsOnly(p.CardNumber)) != 16:
		errs["card_number"] = "Card number must be 16 digits"
	}
	switch {
	case p.ExpiryDate == "":
		errs["expiry_date"] = "Expiry date is required"
	case !expiryPattern.MatchString(p.ExpiryDate):
		errs["expiry_date"] = "Expiry date must be MM/YY"
	case cardExpired(p.ExpiryDate, now):
		errs["expiry_date"] = "Card has expired"
	}
	switch {
	case p.CVV == "":
		errs["cvv"] = "CVV is required"
	case !cvvPattern.MatchString(p.CVV):
		errs["cvv"] = "CVV must be 1-4 digits"
	}

	for _, it := range req.Items {
		if it.Quantity < 1 {
			errs["items"] = "Quantity must be at least 1"
			break
		}
	}

	return errs
}

// cardExpired treats a card as valid through the last day of its expiry
// month. Expects expiry already matched against expiryPattern.
func cardExpired(expiry string, now time.Time) bool {
	m := expiryPattern.FindStringSubmatch(expiry)
	if m == nil {
		return true
	}
	var month, year int
	fmt.Sscanf(m[1], "%d", &month)
	fmt.Sscanf(m[2], "%d", &year)
	endOfMonth := time.Date(2000+year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	return !endOfMonth.After(now.UTC())
}
