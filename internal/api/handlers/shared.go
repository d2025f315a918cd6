package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sageplan/sage-backend/internal/apperrors"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondServiceError maps a service error onto its HTTP status and sends a
// structured error body. Validation errors are 400, missing entities 404,
// superseded projections 409, reasoning-service failures 502, everything
// else 500.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	respondJSON(w, statusForError(err), map[string]string{
		"error":  message,
		"detail": err.Error(),
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrEmptyScenarioDescription),
		errors.Is(err, apperrors.ErrInvalidTimeframe),
		errors.Is(err, apperrors.ErrInvalidConsentStatus),
		errors.Is(err, apperrors.ErrInvalidUUID),
		errors.Is(err, apperrors.ErrEmptyID),
		errors.Is(err, apperrors.ErrInvalidRange),
		errors.Is(err, apperrors.ErrMissingRequiredField):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrProfileNotFound),
		errors.Is(err, apperrors.ErrScenarioNotFound),
		errors.Is(err, apperrors.ErrShareNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrProjectionSuperseded):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrProjectionFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
