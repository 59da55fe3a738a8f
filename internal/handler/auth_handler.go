package handler

import (
	"encoding/json"
	"net/http"

	"romarket/internal/model"
	"romarket/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles seller registration and login requests.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// Auth handles POST /api/sellers requests. The action field selects between
// login and register.
func (h *AuthHandler) Auth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	switch req.Action {
	case model.AuthActionRegister:
		seller, err := h.service.Register(r.Context(), &req)
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusCreated, model.AuthResponse{Success: true, Seller: seller})

	case model.AuthActionLogin:
		seller, err := h.service.Login(r.Context(), &req)
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, model.AuthResponse{Success: true, Seller: seller})

	default:
		writeFailure(w, http.StatusBadRequest, "Unknown action", h.logger)
	}
}
