package orders

import (
	"context"
	"time"

	"github.com/eakarsu/go_deli/internal/cart"
	"github.com/eakarsu/go_deli/internal/money"
	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusDelivered Status = "delivered"
)

// next maps each status to the one that may follow it. Delivered is terminal.
var next = map[Status]Status{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusPreparing,
	StatusPreparing: StatusDelivered,
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusDelivered:
		return true
	}
	return false
}

func (s Status) CanAdvanceTo(to Status) bool {
	return next[s] == to
}

type Order struct {
	ID            uuid.UUID       `json:"id"`
	CustomerName  string          `json:"customer_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	State         string          `json:"state"`
	Zip           string          `json:"zip"`
	Items         []cart.LineItem `json:"items"`
	Subtotal      money.Cents     `json:"subtotal"`
	Tax           money.Cents     `json:"tax"`
	DeliveryFee   money.Cents     `json:"delivery_fee"`
	Total         money.Cents     `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Instructions  *string         `json:"instructions"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Publisher notifies downstream consumers about accepted orders.
// This package defines the interface; implementations live elsewhere.
type Publisher interface {
	PublishOrderAccepted(ctx context.Context, order *Order) error
}
