package orders

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrDuplicateOrder = errors.New("order already exists")
)

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

type Repository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListRecentOrders(ctx context.Context, limit int) ([]*Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Close() error
}
