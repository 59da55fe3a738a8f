package handler

import (
	"encoding/json"
	"net/http"

	"romarket/internal/model"
	"romarket/internal/service"

	"github.com/rs/zerolog"
)

// ListingHandler handles marketplace listing HTTP requests.
type ListingHandler struct {
	service service.ListingService
	logger  zerolog.Logger
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(service service.ListingService, logger zerolog.Logger) *ListingHandler {
	return &ListingHandler{
		service: service,
		logger:  logger.With().Str("handler", "listing").Logger(),
	}
}

// GetAll handles GET /api/products requests.
func (h *ListingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	listings, err := h.service.GetActive(r.Context())
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	// Serialise an empty list rather than null
	if listings == nil {
		listings = []model.Listing{}
	}

	writeJSON(w, http.StatusOK, model.ListingsResponse{Products: listings})
}

// Create handles POST /api/products requests.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.ListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, model.ListingCreatedResponse{Success: true, ProductID: id})
}
