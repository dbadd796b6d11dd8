package checkout

import (
	"strings"

	"github.com/eakarsu/go_deli/internal/cart"
	"github.com/eakarsu/go_deli/internal/money"
)

// Form carries the raw checkout form fields as entered by the customer.
type Form struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	Instructions  string `json:"instructions"`
	PaymentMethod string `json:"payment_method"`
}

// Order is the canonical submission record handed to the order-acceptance
// API. Immutable after assembly: Items is a by-value snapshot and the four
// figures are captured at submission time.
type Order struct {
	CustomerName  string          `json:"customer_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	State         string          `json:"state"`
	Zip           string          `json:"zip"`
	Items         []cart.LineItem `json:"items"`
	Subtotal      money.Cents     `json:"subtotal"`
	Tax           money.Cents     `json:"tax"`
	DeliveryFee   money.Cents     `json:"delivery_fee"`
	Total         money.Cents     `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Instructions  *string         `json:"instructions"`
}

// validate checks the required fields in display order so the first missing
// field reported matches the form layout.
func (f Form) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"first_name", f.FirstName},
		{"last_name", f.LastName},
		{"email", f.Email},
		{"phone", f.Phone},
		{"address", f.Address},
		{"city", f.City},
		{"state", f.State},
		{"zip", f.Zip},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return &ValidationError{Field: field.name}
		}
	}
	return nil
}

// BuildOrder validates the form against the cart and assembles the order
// record. The cart must be non-empty; items are copied so later cart
// mutations cannot touch a submitted order. Blank instructions become nil,
// never an empty string.
func BuildOrder(f Form, c *cart.Cart, pricing cart.PricingConfig) (*Order, error) {
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	items := make([]cart.LineItem, len(c.Items))
	copy(items, c.Items)

	summary := c.Summarize(pricing)

	var instructions *string
	if trimmed := strings.TrimSpace(f.Instructions); trimmed != "" {
		instructions = &trimmed
	}

	paymentMethod := f.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "card"
	}

	return &Order{
		CustomerName:  f.FirstName + " " + f.LastName,
		Email:         f.Email,
		Phone:         f.Phone,
		Address:       f.Address,
		City:          f.City,
		State:         f.State,
		Zip:           f.Zip,
		Items:         items,
		Subtotal:      summary.Subtotal,
		Tax:           summary.Tax,
		DeliveryFee:   summary.DeliveryFee,
		Total:         summary.Total,
		PaymentMethod: paymentMethod,
		Instructions:  instructions,
	}, nil
}
