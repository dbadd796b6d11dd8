package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/eakarsu/go_deli/internal/cart"
	"github.com/eakarsu/go_deli/internal/customize"
	"github.com/eakarsu/go_deli/internal/menu"
	"github.com/eakarsu/go_deli/internal/money"
	"github.com/go-chi/chi/v5"
)

// CartService is the slice of the session layer the cart endpoints need.
type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*cart.Cart, error)
	AddItem(ctx context.Context, sessionID string, item cart.LineItem) (*cart.Cart, error)
	AddCustomizedItem(ctx context.Context, sessionID, name string, unitPrice money.Cents, image string) (*cart.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, lineID int64, quantity int) (*cart.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, lineID int64) (*cart.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
	ToggleOpen(ctx context.Context, sessionID string) (*cart.Cart, error)
	SetOpen(ctx context.Context, sessionID string, open bool) (*cart.Cart, error)
}

type CartHandler struct {
	carts   CartService
	menu    menu.Repository
	pricing cart.PricingConfig
	timeout time.Duration
}

func NewCartHandler(carts CartService, menuRepo menu.Repository, pricing cart.PricingConfig, timeout time.Duration) *CartHandler {
	return &CartHandler{
		carts:   carts,
		menu:    menuRepo,
		pricing: pricing,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	MenuItemID int64 `json:"menu_item_id"`
}

type AddCustomizedRequestDTO struct {
	ItemID     int64               `json:"item_id"`
	Selections map[string][]string `json:"selections"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type SetOpenRequestDTO struct {
	Open bool `json:"open"`
}

type CartResponseDTO struct {
	Cart       *cart.Cart   `json:"cart"`
	Summary    cart.Summary `json:"summary"`
	TotalItems int          `json:"total_items"`
}

func (h *CartHandler) cartResponse(c *cart.Cart) CartResponseDTO {
	return CartResponseDTO{
		Cart:       c,
		Summary:    c.Summarize(h.pricing),
		TotalItems: c.TotalItems(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "missing_session", "missing session identity")
		return
	}

	c, err := h.carts.GetCart(ctx, sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.cartResponse(c))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "missing_session", "missing session identity")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.MenuItemID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_menu_item_id", "menu_item_id must be positive")
		return
	}

	item, err := h.menu.GetItem(ctx, req.MenuItemID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	c, err := h.carts.AddItem(ctx, sessionID, cart.LineItem{
		ID:        item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Image:     item.Image,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, h.cartResponse(c))
}

func (h *CartHandler) AddCustomizedItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "missing_session", "missing session identity")
		return
	}

	var req AddCustomizedRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ItemID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id must be positive")
		return
	}

	item, err := h.menu.GetCustomizableItem(ctx, req.ItemID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sel, err := customize.SelectionFromWire(item.Rules, req.Selections)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	variant := customize.PriceVariant(item.Base(), item.Rules, sel)

	c, err := h.carts.AddCustomizedItem(ctx, sessionID, variant.Name, variant.TotalPrice, item.Image)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, h.cartResponse(c))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "missing_session", "missing session identity")
		return
	}

	lineIDStr := chi.URLParam(r, "line_id")
	lineID, err := strconv.ParseInt(lineIDStr, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_line_id", "line_id must be an integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not exceed 99")
		return
	}

	// Zero and negative quantities remove the line.
	c, err := h.carts.UpdateQuantity(ctx, sessionID, lineID, req.Quantity)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.cartResponse(c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "missing_session", "missing session identity")
		return
	}

	lineIDStr := chi.URLParam(r, "line_id")
	lineID, err := strconv.ParseInt(lineIDStr, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_line_id", "line_id must be an integer")
		return
	}

	c, err := h.carts.RemoveItem(ctx, sessionID, lineID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.cartResponse(c))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "missing_session", "missing session identity")
		return
	}

	if err := h.carts.ClearCart(ctx, sessionID); err != nil {
		handleServiceError(w, err)
		return
	}

	c, err := h.carts.GetCart(ctx, sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.cartResponse(c))
}

func (h *CartHandler) ToggleOpen(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "missing_session", "missing session identity")
		return
	}

	c, err := h.carts.ToggleOpen(ctx, sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.cartResponse(c))
}

func (h *CartHandler) SetOpen(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "missing_session", "missing session identity")
		return
	}

	var req SetOpenRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	c, err := h.carts.SetOpen(ctx, sessionID, req.Open)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.cartResponse(c))
}
