package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/eakarsu/go_deli/internal/checkout"
	"github.com/eakarsu/go_deli/internal/customize"
	"github.com/eakarsu/go_deli/internal/menu"
	"github.com/eakarsu/go_deli/internal/orders"
	"github.com/eakarsu/go_deli/internal/session"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: "",
	})
}

// handleServiceError maps domain errors to HTTP status codes.
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *checkout.ValidationError
	var ruleErr *customize.RuleError

	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, "missing_field", validationErr.Error())
	case errors.As(err, &ruleErr):
		respondError(w, http.StatusBadRequest, "invalid_selection", ruleErr.Error())
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", err.Error())
	case errors.Is(err, menu.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "item_not_found", err.Error())
	case errors.Is(err, orders.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "order_not_found", err.Error())
	case errors.Is(err, session.ErrCartNotFound):
		respondError(w, http.StatusNotFound, "cart_not_found", err.Error())
	case errors.Is(err, orders.ErrDuplicateOrder):
		respondError(w, http.StatusConflict, "duplicate_order", err.Error())
	case errors.Is(err, orders.ErrInvalidTransition):
		respondError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, checkout.ErrSubmissionFailed):
		respondError(w, http.StatusBadGateway, "submission_failed", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
