package session

import (
	"context"
	"errors"

	"github.com/eakarsu/go_deli/internal/cart"
)

type CartCache interface {
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
	Set(ctx context.Context, sessionID string, c *cart.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

var ErrCacheMiss = errors.New("cache miss")

// NopCache satisfies CartCache when no cache backend is configured.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (*cart.Cart, error) { return nil, ErrCacheMiss }
func (NopCache) Set(context.Context, string, *cart.Cart) error   { return nil }
func (NopCache) Delete(context.Context, string) error            { return nil }
