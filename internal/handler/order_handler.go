package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"romarket/internal/model"
	"romarket/internal/service"

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

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// List handles GET /api/orders requests. A seller_id query parameter scopes
// the listing to one seller; without it the most recent orders are returned.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var (
		orders []model.Order
		err    error
	)

	if sellerIDStr := r.URL.Query().Get("seller_id"); sellerIDStr != "" {
		sellerID, parseErr := strconv.Atoi(sellerIDStr)
		if parseErr != nil {
			writeFailure(w, http.StatusBadRequest, "invalid seller_id", h.logger)
			return
		}
		orders, err = h.service.GetBySeller(r.Context(), sellerID)
	} else {
		orders, err = h.service.GetRecent(r.Context())
	}

	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "failed to retrieve orders", h.logger)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}

	writeJSON(w, http.StatusOK, model.OrdersResponse{Orders: orders})
}
