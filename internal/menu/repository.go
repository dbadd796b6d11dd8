package menu

import (
	"context"
	"errors"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
)

// Repository defines the catalog read operations the handlers need.
// Consumers define this interface, not the storage implementations.
type Repository interface {
	GetAllItems(ctx context.Context) ([]Item, error)
	GetItemsByCategory(ctx context.Context, category string) ([]Item, error)
	GetItem(ctx context.Context, id int64) (Item, error)
	GetCustomizableItems(ctx context.Context) ([]CustomizableItem, error)
	GetCustomizableItem(ctx context.Context, id int64) (CustomizableItem, error)
	Close() error
}
