package middleware

import (
	"baccarat_backend/internal/monitoring"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Metrics counts requests per route pattern, so session ids never become labels.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		pattern := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				pattern = p
			}
		}
		monitoring.HttpRequests.WithLabelValues(r.Method, pattern).Inc()
	})
}
