package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

const serviceName = "api-gateway"

type Handler struct {
	graphql    http.Handler
	metrics    http.Handler
	playground bool
}

// NewHandler serves schema over HTTP. metrics may be nil, in which case
// /metrics is not registered.
func NewHandler(schema *graphql.Schema, metrics http.Handler, playground bool) *Handler {
	return &Handler{
		graphql: handler.New(&handler.Config{
			Schema:     schema,
			Pretty:     true,
			Playground: playground,
		}),
		metrics:    metrics,
		playground: playground,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	if h.metrics != nil {
		r.Handle("/metrics", h.metrics).Methods(http.MethodGet)
	}
	r.Handle("/graphql", h.graphql).Methods(http.MethodGet, http.MethodPost)

	// The playground posts its queries back to the path it was loaded from.
	if h.playground {
		r.Handle("/", h.graphql).Methods(http.MethodGet, http.MethodPost)
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
