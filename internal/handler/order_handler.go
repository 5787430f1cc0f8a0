package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"harsha-hotel/internal/model"
	"harsha-hotel/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Place handles POST /api/orders requests.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	id, err := h.service.Place(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidItem) {
			writeError(w, http.StatusBadRequest, model.ErrInvalidItem.Message, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to place order", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, model.IDResponse{ID: id})
}

// List handles GET /api/orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	orders, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve orders", h.logger)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// Aggregated handles GET /api/orders/aggregated requests.
func (h *OrderHandler) Aggregated(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	aggregates, err := h.service.AggregateUnserved(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to aggregate orders", h.logger)
		return
	}

	if aggregates == nil {
		aggregates = []model.AggregatedOrder{}
	}

	writeJSON(w, http.StatusOK, aggregates)
}
