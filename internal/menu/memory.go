package menu

import (
	"context"
	"sync"
)

// MemoryRepository serves the catalog out of process memory, seeded at
// construction. The storefront runs on this by default; the SQLite
// repository is the durable option.
type MemoryRepository struct {
	mu           sync.RWMutex
	items        map[int64]Item
	order        []int64 // preserves menu display order
	customizable map[int64]CustomizableItem
	custOrder    []int64
}

func NewMemoryRepository(items []Item, customizable []CustomizableItem) *MemoryRepository {
	r := &MemoryRepository{
		items:        make(map[int64]Item, len(items)),
		customizable: make(map[int64]CustomizableItem, len(customizable)),
	}
	for _, it := range items {
		r.items[it.ID] = it
		r.order = append(r.order, it.ID)
	}
	for _, c := range customizable {
		r.customizable[c.ID] = c
		r.custOrder = append(r.custOrder, c.ID)
	}
	return r
}

func (r *MemoryRepository) GetAllItems(_ context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *MemoryRepository) GetItemsByCategory(_ context.Context, category string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Item
	for _, id := range r.order {
		if r.items[id].Category == category {
			out = append(out, r.items[id])
		}
	}
	return out, nil
}

func (r *MemoryRepository) GetItem(_ context.Context, id int64) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return item, nil
}

func (r *MemoryRepository) GetCustomizableItems(_ context.Context) ([]CustomizableItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]CustomizableItem, 0, len(r.custOrder))
	for _, id := range r.custOrder {
		out = append(out, r.customizable[id])
	}
	return out, nil
}

func (r *MemoryRepository) GetCustomizableItem(_ context.Context, id int64) (CustomizableItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.customizable[id]
	if !ok {
		return CustomizableItem{}, ErrItemNotFound
	}
	return item, nil
}

func (r *MemoryRepository) Close() error { return nil }
