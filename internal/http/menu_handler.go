package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/eakarsu/go_deli/internal/menu"
	"github.com/go-chi/chi/v5"
)

type MenuHandler struct {
	repo    menu.Repository
	timeout time.Duration
}

func NewMenuHandler(repo menu.Repository, timeout time.Duration) *MenuHandler {
	return &MenuHandler{
		repo:    repo,
		timeout: timeout,
	}
}

func (h *MenuHandler) GetAllItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	items, err := h.repo.GetAllItems(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) GetItemsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	category := chi.URLParam(r, "category")
	if category == "" {
		respondError(w, http.StatusBadRequest, "invalid_category", "category must not be empty")
		return
	}

	items, err := h.repo.GetItemsByCategory(ctx, category)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}

	item, err := h.repo.GetItem(ctx, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) GetCustomizableItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	items, err := h.repo.GetCustomizableItems(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}
