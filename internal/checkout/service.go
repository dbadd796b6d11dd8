package checkout

import (
	"context"
	"log"

	"github.com/eakarsu/go_deli/internal/cart"
)

// CartAccess is the slice of the session service checkout needs.
type CartAccess interface {
	GetCart(ctx context.Context, sessionID string) (*cart.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
}

// Service runs the checkout flow: snapshot and validate, hand off to the
// acceptance collaborator, and clear the cart if and only if the order was
// acknowledged.
type Service struct {
	carts   CartAccess
	placer  OrderPlacer
	pricing cart.PricingConfig
}

func NewService(carts CartAccess, placer OrderPlacer, pricing cart.PricingConfig) *Service {
	return &Service{
		carts:   carts,
		placer:  placer,
		pricing: pricing,
	}
}

// Submit validates the form, assembles the order from the session's cart
// and places it. An empty cart or invalid form rejects before the
// collaborator is called. The cart survives a failed placement so the
// customer can retry without re-entering items.
func (s *Service) Submit(ctx context.Context, sessionID string, form Form) (*Receipt, error) {
	c, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	order, err := BuildOrder(form, c, s.pricing)
	if err != nil {
		return nil, err
	}

	receipt, err := s.placer.PlaceOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	// Clear strictly after acknowledgment. A failed clear leaves a stale
	// cart behind but never un-places the order.
	if errClear := s.carts.ClearCart(ctx, sessionID); errClear != nil {
		log.Printf("failed to clear cart after order %s: %v", receipt.OrderID, errClear)
	}

	return receipt, nil
}
