// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sageplan/sage-backend/internal/api/response"
	"github.com/sageplan/sage-backend/internal/validation"
)

// ValidateUUIDParam returns middleware that validates a named URL parameter
// as a UUID. Returns 400 Bad Request when the parameter is missing or
// malformed, before the handler runs.
//
// Example usage in router:
//
//	r.Route("/{profileId}", func(r chi.Router) {
//	    r.Use(middleware.ValidateUUIDParam("profileId"))
//	    r.Get("/", handler.GetPortfolio)
//	})
func ValidateUUIDParam(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, param)

			if id == "" {
				response.RespondError(w, http.StatusBadRequest, "valid UUID is required", "")
				return
			}

			if err := validation.ValidateUUID(id); err != nil {
				response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
