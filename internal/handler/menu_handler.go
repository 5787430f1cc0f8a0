package handler

import (
	"encoding/json"
	"net/http"

	"harsha-hotel/internal/model"
	"harsha-hotel/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu-related HTTP requests.
type MenuHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// List handles GET /api/menu requests.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	items, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve menu", h.logger)
		return
	}

	if items == nil {
		items = []model.MenuItem{}
	}

	writeJSON(w, http.StatusOK, items)
}

// Add handles POST /api/menu requests.
func (h *MenuHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	id, err := h.service.Add(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to add menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, model.IDResponse{ID: id})
}
