package routes

import (
	"net/http"

	"github.com/rs/cors"
)

// WithCORS lets any origin call the API. Preflights are answered with 200 and an empty body.
func WithCORS(h http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:       []string{"Content-Type", "Authorization"},
		OptionsSuccessStatus: http.StatusOK,
	}).Handler(h)
}
