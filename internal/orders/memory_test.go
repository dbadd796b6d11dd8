package orders

import (
	"context"
	"testing"
	"time"

	"github.com/eakarsu/go_deli/internal/cart"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *Order {
	return &Order{
		ID:            uuid.New(),
		CustomerName:  "Dana Reyes",
		Email:         "dana@example.com",
		Phone:         "555-0134",
		Address:       "12 Elm St",
		City:          "Melville",
		State:         "NY",
		Zip:           "11747",
		Items:         []cart.LineItem{{ID: 7, Name: "Italian Hero", UnitPrice: 1795, Quantity: 1}},
		Subtotal:      1795,
		Tax:           157,
		DeliveryFee:   399,
		Total:         2351,
		PaymentMethod: "card",
		Status:        StatusPending,
	}
}

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	order := sampleOrder()

	require.NoError(t, repo.CreateOrder(ctx, order))

	fetched, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, fetched.ID)
	assert.Equal(t, "Dana Reyes", fetched.CustomerName)
	assert.Equal(t, StatusPending, fetched.Status)
	assert.Len(t, fetched.Items, 1)
	assert.False(t, fetched.CreatedAt.IsZero())
}

func TestMemoryRepository_DuplicateID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	order := sampleOrder()

	require.NoError(t, repo.CreateOrder(ctx, order))
	assert.ErrorIs(t, repo.CreateOrder(ctx, order), ErrDuplicateOrder)
}

func TestMemoryRepository_GetNotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.GetOrderByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	order := sampleOrder()
	require.NoError(t, repo.CreateOrder(ctx, order))

	fetched, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	fetched.Items[0].Quantity = 99
	fetched.CustomerName = "changed"

	again, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].Quantity)
	assert.Equal(t, "Dana Reyes", again.CustomerName)
}

func TestMemoryRepository_ListRecentOrders(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first := sampleOrder()
	require.NoError(t, repo.CreateOrder(ctx, first))

	// Small sleep to ensure different created_at timestamps
	time.Sleep(10 * time.Millisecond)

	second := sampleOrder()
	require.NoError(t, repo.CreateOrder(ctx, second))

	listed, err := repo.ListRecentOrders(ctx, 10)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)

	limited, err := repo.ListRecentOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, second.ID, limited[0].ID)
}

func TestMemoryRepository_UpdateStatus(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	order := sampleOrder()
	require.NoError(t, repo.CreateOrder(ctx, order))

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, StatusConfirmed))

	fetched, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, fetched.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), StatusConfirmed), ErrOrderNotFound)
}
