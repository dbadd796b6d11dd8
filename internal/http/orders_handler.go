package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/eakarsu/go_deli/internal/checkout"
	"github.com/eakarsu/go_deli/internal/orders"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// OrderService is the acceptance side: it records submitted orders and
// walks them through the kitchen lifecycle.
type OrderService interface {
	Accept(ctx context.Context, submitted *checkout.Order) (*orders.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*orders.Order, error)
	ListRecent(ctx context.Context, limit int) ([]*orders.Order, error)
	AdvanceStatus(ctx context.Context, id uuid.UUID, to orders.Status) error
}

type OrdersHandler struct {
	service OrderService
	timeout time.Duration
}

func NewOrdersHandler(service OrderService, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		service: service,
		timeout: timeout,
	}
}

type AcceptedOrderDTO struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type AdvanceStatusRequestDTO struct {
	Status string `json:"status"`
}

func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var submitted checkout.Order
	if err := json.NewDecoder(r.Body).Decode(&submitted); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if len(submitted.Items) == 0 {
		respondError(w, http.StatusBadRequest, "empty_order", "order must contain at least one item")
		return
	}

	order, err := h.service.Accept(ctx, &submitted)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, AcceptedOrderDTO{
		OrderID: order.ID.String(),
		Status:  string(order.Status),
	})
}

func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a valid UUID")
		return
	}

	order, err := h.service.GetOrder(ctx, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 || parsed > 500 {
			respondError(w, http.StatusBadRequest, "invalid_limit", "limit must be between 1 and 500")
			return
		}
		limit = parsed
	}

	listed, err := h.service.ListRecent(ctx, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, listed)
}

func (h *OrdersHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a valid UUID")
		return
	}

	var req AdvanceStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.service.AdvanceStatus(ctx, id, orders.Status(req.Status)); err != nil {
		handleServiceError(w, err)
		return
	}

	order, err := h.service.GetOrder(ctx, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}
