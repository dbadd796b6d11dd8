package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eakarsu/go_deli/internal/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *Order {
	return &Order{
		CustomerName:  "Dana Reyes",
		Email:         "dana@example.com",
		Phone:         "555-0134",
		Address:       "12 Elm St",
		City:          "Melville",
		State:         "NY",
		Zip:           "11747",
		Items:         []cart.LineItem{{ID: 1, Name: "Italian Hero", UnitPrice: 1795, Quantity: 1}},
		Subtotal:      1795,
		Tax:           157,
		DeliveryFee:   399,
		Total:         2351,
		PaymentMethod: "card",
	}
}

func TestHTTPPlacer_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)

		var order Order
		require.NoError(t, json.NewDecoder(r.Body).Decode(&order))
		assert.Equal(t, "Dana Reyes", order.CustomerName)
		assert.Len(t, order.Items, 1)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Receipt{OrderID: "ord-42", Status: "pending"})
	}))
	defer srv.Close()

	placer := NewHTTPPlacer(srv.URL, 5*time.Second)

	receipt, err := placer.PlaceOrder(context.Background(), testOrder())
	require.NoError(t, err)
	assert.Equal(t, "ord-42", receipt.OrderID)
	assert.Equal(t, "pending", receipt.Status)
}

func TestHTTPPlacer_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	placer := NewHTTPPlacer(srv.URL, 5*time.Second)

	_, err := placer.PlaceOrder(context.Background(), testOrder())
	assert.ErrorIs(t, err, ErrSubmissionFailed)
}

func TestHTTPPlacer_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	placer := NewHTTPPlacer(srv.URL, 5*time.Second)

	for i := 0; i < 7; i++ {
		_, err := placer.PlaceOrder(context.Background(), testOrder())
		assert.ErrorIs(t, err, ErrSubmissionFailed)
	}

	// After 5 consecutive failures the breaker short-circuits the call.
	assert.Equal(t, 5, calls)
}
