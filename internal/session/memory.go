package session

import (
	"context"
	"sync"

	"github.com/eakarsu/go_deli/internal/cart"
)

// MemoryRepository keeps session carts in process memory. The default for
// a single-instance deployment; carts live for the process lifetime.
type MemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]*cart.Cart
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{carts: make(map[string]*cart.Cart)}
}

func (r *MemoryRepository) GetCart(_ context.Context, sessionID string) (*cart.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.carts[sessionID]
	if !ok {
		return nil, ErrCartNotFound
	}
	return c.Clone(), nil
}

func (r *MemoryRepository) SaveCart(_ context.Context, sessionID string, c *cart.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[sessionID] = c.Clone()
	return nil
}

func (r *MemoryRepository) DeleteCart(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}
