package session

import (
	"context"
	"errors"

	"github.com/eakarsu/go_deli/internal/cart"
)

var ErrCartNotFound = errors.New("cart not found")

// CartRepository persists per-session carts. Consumers define this
// interface, not the storage implementations.
type CartRepository interface {
	GetCart(ctx context.Context, sessionID string) (*cart.Cart, error)
	SaveCart(ctx context.Context, sessionID string, c *cart.Cart) error
	DeleteCart(ctx context.Context, sessionID string) error
}
