package cart

import "github.com/eakarsu/go_deli/internal/money"

// LineItem is a single cart line. ID is the merge identity: two adds with
// the same ID accumulate quantity on one line.
type LineItem struct {
	ID        int64       `json:"id" bson:"id"`
	Name      string      `json:"name" bson:"name"`
	UnitPrice money.Cents `json:"price" bson:"price"`
	Image     string      `json:"image" bson:"image"`
	Quantity  int         `json:"quantity" bson:"quantity"`
}

// Cart holds the ordered line items plus the drawer visibility flag.
//
// Invariants: no two items share an ID, every item has quantity >= 1, and
// insertion order is preserved. All operations are synchronous and total;
// each leaves the cart in a consistent state.
type Cart struct {
	Items  []LineItem `json:"items" bson:"items"`
	IsOpen bool       `json:"is_open" bson:"is_open"`
}

// AddItem merges the candidate into the cart. If a line with the same ID
// exists its quantity is incremented by one and all other fields are left
// unchanged; otherwise the candidate is appended with quantity 1.
//
// Customized variants must be given a fresh LineID before calling AddItem so
// that differently-customized instances of the same base item never merge.
func (c *Cart) AddItem(candidate LineItem) {
	for i := range c.Items {
		if c.Items[i].ID == candidate.ID {
			c.Items[i].Quantity++
			return
		}
	}
	candidate.Quantity = 1
	c.Items = append(c.Items, candidate)
}

// RemoveItem deletes the line with the given ID. No-op if absent.
func (c *Cart) RemoveItem(id int64) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity for the matching line. A quantity of
// zero or less removes the line; an unknown ID is a no-op.
func (c *Cart) UpdateQuantity(id int64, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the item list. The visibility flag is untouched.
func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) ToggleOpen() { c.IsOpen = !c.IsOpen }
func (c *Cart) Open()       { c.IsOpen = true }
func (c *Cart) Close()      { c.IsOpen = false }

// Clone returns a deep copy. Stores hand out clones so callers can never
// alias shared cart state.
func (c *Cart) Clone() *Cart {
	out := &Cart{IsOpen: c.IsOpen}
	if len(c.Items) > 0 {
		out.Items = make([]LineItem, len(c.Items))
		copy(out.Items, c.Items)
	}
	return out
}
