package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/eakarsu/go_deli/internal/cart"
	"github.com/eakarsu/go_deli/internal/checkout"
	"github.com/eakarsu/go_deli/internal/orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acceptancePayload() checkout.Order {
	return checkout.Order{
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
	}
}

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/api/orders/", "", acceptancePayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	var accepted AcceptedOrderDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&accepted))
	assert.NotEmpty(t, accepted.OrderID)
	assert.Equal(t, "pending", accepted.Status)
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	env := newTestEnv(t, nil)

	payload := acceptancePayload()
	payload.Items = nil
	rec := env.do(t, http.MethodPost, "/api/orders/", "", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrder(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/api/orders/", "", acceptancePayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	var accepted AcceptedOrderDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&accepted))

	rec = env.do(t, http.MethodGet, "/api/orders/"+accepted.OrderID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var order orders.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
	assert.Equal(t, accepted.OrderID, order.ID.String())
	assert.Equal(t, "Dana Reyes", order.CustomerName)
	assert.Equal(t, orders.StatusPending, order.Status)
}

func TestGetOrder_NotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/api/orders/4f8b8f9e-8b9a-4f0e-9b1a-111111111111", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrder_InvalidID(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/api/orders/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListOrders(t *testing.T) {
	env := newTestEnv(t, nil)

	for i := 0; i < 3; i++ {
		rec := env.do(t, http.MethodPost, "/api/orders/", "", acceptancePayload())
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/api/orders/?limit=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []orders.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listed))
	assert.Len(t, listed, 2)
}

func TestListOrders_InvalidLimit(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/api/orders/?limit=-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdvanceOrderStatus(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/api/orders/", "", acceptancePayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	var accepted AcceptedOrderDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&accepted))

	rec = env.do(t, http.MethodPut, "/api/orders/"+accepted.OrderID+"/status", "", AdvanceStatusRequestDTO{Status: "confirmed"})
	require.Equal(t, http.StatusOK, rec.Code)

	var order orders.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
	assert.Equal(t, orders.StatusConfirmed, order.Status)
}

func TestAdvanceOrderStatus_InvalidTransition(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/api/orders/", "", acceptancePayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	var accepted AcceptedOrderDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&accepted))

	rec = env.do(t, http.MethodPut, "/api/orders/"+accepted.OrderID+"/status", "", AdvanceStatusRequestDTO{Status: "delivered"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}
