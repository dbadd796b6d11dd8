package orders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/eakarsu/go_deli/internal/checkout"
	"github.com/google/uuid"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// Service accepts submitted orders, persists them and announces them to
// downstream consumers. Publishing is best effort; a persisted order is
// accepted even when the announcement fails.
type Service struct {
	repo      Repository
	publisher Publisher
}

func NewService(repo Repository, publisher Publisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

func (s *Service) Accept(ctx context.Context, submitted *checkout.Order) (*Order, error) {
	now := time.Now()
	order := &Order{
		ID:            uuid.New(),
		CustomerName:  submitted.CustomerName,
		Email:         submitted.Email,
		Phone:         submitted.Phone,
		Address:       submitted.Address,
		City:          submitted.City,
		State:         submitted.State,
		Zip:           submitted.Zip,
		Items:         submitted.Items,
		Subtotal:      submitted.Subtotal,
		Tax:           submitted.Tax,
		DeliveryFee:   submitted.DeliveryFee,
		Total:         submitted.Total,
		PaymentMethod: submitted.PaymentMethod,
		Instructions:  submitted.Instructions,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderAccepted(ctx, order); err != nil {
			log.Printf("failed to publish accepted order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]*Order, error) {
	return s.repo.ListRecentOrders(ctx, limit)
}

func (s *Service) AdvanceStatus(ctx context.Context, id uuid.UUID, to Status) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}

	if !order.Status.CanAdvanceTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, to)
	}

	return s.repo.UpdateStatus(ctx, id, to)
}
