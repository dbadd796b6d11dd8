package cart

import "github.com/eakarsu/go_deli/internal/money"

// PricingConfig carries the configured tax rate and delivery fee.
type PricingConfig struct {
	TaxRateBps  int64       // basis points, 875 = 8.75%
	DeliveryFee money.Cents // flat fee per order
}

// DefaultPricingConfig matches the storefront defaults: 8.75% tax and a
// 3.99 delivery fee.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{TaxRateBps: 875, DeliveryFee: 399}
}

// Summary holds the four derived order figures. None of them is stored;
// every figure is recomputed from the cart on demand so the displayed
// subtotal and total can never drift apart.
type Summary struct {
	Subtotal    money.Cents `json:"subtotal"`
	Tax         money.Cents `json:"tax"`
	DeliveryFee money.Cents `json:"delivery_fee"`
	Total       money.Cents `json:"total"`
}

// TotalItems is the quantity sum across all lines, shown on the cart badge.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal is the exact sum of unit price times quantity across all lines.
func (c *Cart) Subtotal() money.Cents {
	var total money.Cents
	for _, item := range c.Items {
		total += item.UnitPrice.Mul(item.Quantity)
	}
	return total
}

// Summarize derives the four order figures from the cart. Tax is the only
// rounded figure (round half up to whole cents, inside MulRate).
func (c *Cart) Summarize(cfg PricingConfig) Summary {
	subtotal := c.Subtotal()
	tax := subtotal.MulRate(cfg.TaxRateBps)
	return Summary{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: cfg.DeliveryFee,
		Total:       subtotal + tax + cfg.DeliveryFee,
	}
}
