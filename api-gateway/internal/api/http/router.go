package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func NewRouter(handler *Handler, allowedOrigins []string, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
	})
	// Wrapped outside the router so 404 and 405 responses are logged too.
	return c.Handler(requestContext(log)(recovery(log)(r)))
}
