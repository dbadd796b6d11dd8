package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// Receipt is the acknowledgment returned by the order-acceptance API.
type Receipt struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// OrderPlacer hands an assembled order to the acceptance collaborator.
// Consumers define this interface, not the HTTP implementation.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, order *Order) (*Receipt, error)
}

// HTTPPlacer posts orders to the acceptance endpoint through a circuit
// breaker. It performs no retries; transient failures surface as
// ErrSubmissionFailed and retrying is the caller's decision.
type HTTPPlacer struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[*Receipt]
}

func NewHTTPPlacer(baseURL string, timeout time.Duration) *HTTPPlacer {
	settings := gobreaker.Settings{
		Name:    "order-acceptance",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &HTTPPlacer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[*Receipt](settings),
	}
}

func (p *HTTPPlacer) PlaceOrder(ctx context.Context, order *Order) (*Receipt, error) {
	receipt, err := p.breaker.Execute(func() (*Receipt, error) {
		return p.post(ctx, order)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	return receipt, nil
}

func (p *HTTPPlacer) post(ctx context.Context, order *Order) (*Receipt, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order acceptance call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("order acceptance returned status %d", resp.StatusCode)
	}

	var receipt Receipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, fmt.Errorf("failed to decode receipt: %w", err)
	}

	return &receipt, nil
}
