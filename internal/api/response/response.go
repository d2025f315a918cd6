// Package response holds the helpers for sending JSON responses with a
// consistent error shape across handlers and middleware.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the error body every endpoint returns. Details carries
// optional context such as the underlying error string.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON writes data as JSON with the given status code. A nil data
// value writes only the status, for responses with no body. Encoding
// failures are logged; by then the status line is already out.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError writes a structured error response.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
