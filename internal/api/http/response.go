package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"atlasrent-backend/internal/booking"
	"atlasrent-backend/internal/logger"
	"atlasrent-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
	// Conflict carries the blocking interval on availability failures so
	// the client can highlight the taken dates.
	Conflict *booking.Interval `json:"conflict,omitempty"`
}

// writeError maps service and evaluator errors onto HTTP statuses. Anything
// unrecognized is a 500 with a generic body; the cause goes to the log only.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *booking.ValidationError
	var conflictErr *booking.ConflictError
	var configErr *booking.ConfigurationError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &configErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.As(err, &conflictErr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Conflict: &conflictErr.Conflict})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

type listResponse struct {
	Items interface{} `json:"items"`
	Total int32       `json:"total"`
	Page  int32       `json:"page"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
