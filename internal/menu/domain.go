package menu

import (
	"github.com/eakarsu/go_deli/internal/customize"
	"github.com/eakarsu/go_deli/internal/money"
)

// Item is a fixed-price menu entry.
type Item struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Cents `json:"price"`
	Image       string      `json:"image"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
	Available   bool        `json:"available"`
}

// CustomizableItem is a build-your-own entry: a base item plus the
// customization rule set applied in the order declared.
type CustomizableItem struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	BasePrice   money.Cents      `json:"base_price"`
	Image       string           `json:"image"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Rules       []customize.Rule `json:"rules"`
}

// Base returns the item in the shape the customization engine prices.
func (c CustomizableItem) Base() customize.Item {
	return customize.Item{ID: c.ID, Name: c.Name, BasePrice: c.BasePrice}
}
