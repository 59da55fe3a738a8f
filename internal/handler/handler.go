package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"romarket/internal/model"

	"github.com/rs/zerolog"
)

// failureResponse is the rejection payload shared by all endpoints. Clients
// key off the success flag rather than the HTTP status.
type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeFailure writes a success=false response with the given status code
// and message.
func writeFailure(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, failureResponse{Success: false, Error: message})
}

// writeDomainError maps a service error to a status and user-facing message.
// Domain errors carry their own message; anything else is masked.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case model.ErrCodeInvalidCredentials:
			status = http.StatusUnauthorized
		case model.ErrCodeEmailTaken:
			status = http.StatusConflict
		case model.ErrCodeProductNotFound:
			status = http.StatusNotFound
		}
		writeFailure(w, status, domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Msg("unexpected service error")
	writeFailure(w, http.StatusInternalServerError, "Internal server error", logger)
}
