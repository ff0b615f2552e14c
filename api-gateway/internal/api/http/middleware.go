package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"nuerpay-gateway/api-gateway/internal/graph"
	"nuerpay-gateway/api-gateway/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// requestContext tags the request with an id and a scoped logger, and moves
// the Authorization header into the context for the resolvers.
func requestContext(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			reqLog := log.With(zap.String("request_id", requestID))
			ctx := logging.WithLogger(r.Context(), reqLog)
			ctx = graph.WithAccessToken(ctx, r.Header.Get("Authorization"))

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(ctx))

			reqLog.Debug("request served",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("elapsed", time.Since(start)),
			)
		})
	}
}

func recovery(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logging.FromContext(r.Context(), log).Error("recovered from panic in handler",
						zap.String("panic", fmt.Sprint(rec)),
						zap.Stack("stack"),
					)
					writeJSON(w, http.StatusInternalServerError, map[string]string{
						"error": "an internal error occurred",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}
