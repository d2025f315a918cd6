package middleware

import (
	"github.com/go-chi/cors"
)

// NewCORS creates the CORS middleware for the dashboard frontend. The API
// key header stays out of the inbound allow-list: it is sent by this
// service to the projection collaborator, never by browsers to us.
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type",
			"Authorization",
		},
		ExposedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
