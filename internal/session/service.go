package session

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/eakarsu/go_deli/internal/cart"
	"github.com/eakarsu/go_deli/internal/money"
)

// Service owns cart state for browser sessions. Reads go through the cache;
// every mutation loads the cart, applies one cart operation, saves, and
// invalidates the cache entry.
type Service struct {
	repo  CartRepository
	cache CartCache
	idgen cart.LineIDGenerator
	sfg   singleflight.Group // Prevents cache stampede
}

func NewService(repo CartRepository, cache CartCache, idgen cart.LineIDGenerator) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		idgen: idgen,
	}
}

// GetCart returns the session's cart, or a fresh empty cart for a session
// that has none yet.
func (s *Service) GetCart(ctx context.Context, sessionID string) (*cart.Cart, error) {
	// Use singleflight to collapse concurrent cache misses for the same session
	v, err, _ := s.sfg.Do(sessionID, func() (interface{}, error) {
		c, err := s.cache.Get(ctx, sessionID)
		if err == nil {
			return c, nil
		}

		if !errors.Is(err, ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		c, errGet := s.repo.GetCart(ctx, sessionID)
		if errGet != nil && errors.Is(errGet, ErrCartNotFound) {
			return &cart.Cart{}, nil
		}
		if errGet != nil {
			return nil, errGet
		}

		go func() {
			if errSet := s.cache.Set(context.Background(), sessionID, c); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return c, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*cart.Cart), nil
}

// AddItem merges a catalog item into the session's cart. The caller passes
// the catalog id so repeat adds of the same item stack on one line.
func (s *Service) AddItem(ctx context.Context, sessionID string, item cart.LineItem) (*cart.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.AddItem(item)
	})
}

// AddCustomizedItem appends a priced customized variant under a fresh line
// id, so that differently-customized variants of the same base item never
// merge, and repeat adds of an identical customization stay separate lines.
func (s *Service) AddCustomizedItem(ctx context.Context, sessionID, name string, unitPrice money.Cents, image string) (*cart.Cart, error) {
	line := cart.LineItem{
		ID:        s.idgen.NextID(),
		Name:      name,
		UnitPrice: unitPrice,
		Image:     image,
	}
	return s.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.AddItem(line)
	})
}

func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, lineID int64, quantity int) (*cart.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.UpdateQuantity(lineID, quantity)
	})
}

func (s *Service) RemoveItem(ctx context.Context, sessionID string, lineID int64) (*cart.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.RemoveItem(lineID)
	})
}

// ClearCart empties the session's cart. The drawer flag is untouched.
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	_, err := s.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.Clear()
	})
	return err
}

func (s *Service) ToggleOpen(ctx context.Context, sessionID string) (*cart.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.ToggleOpen()
	})
}

func (s *Service) SetOpen(ctx context.Context, sessionID string, open bool) (*cart.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) {
		if open {
			c.Open()
		} else {
			c.Close()
		}
	})
}

func (s *Service) mutate(ctx context.Context, sessionID string, apply func(*cart.Cart)) (*cart.Cart, error) {
	c, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrCartNotFound) {
			log.Printf("repo get cart error: %v", err)
			return nil, err
		}
		c = &cart.Cart{}
	}

	apply(c)

	if errSave := s.repo.SaveCart(ctx, sessionID, c); errSave != nil {
		log.Printf("repo save cart error: %v", errSave)
		return nil, errSave
	}

	s.invalidateCache(sessionID)
	return c, nil
}

func (s *Service) invalidateCache(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, sessionID); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}
