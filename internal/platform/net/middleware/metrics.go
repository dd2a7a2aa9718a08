package middleware

import (
	"net/http"
	"strconv"
	"time"

	"postguard/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

// Metrics records request count and latency keyed by the matched chi route pattern
// Unmatched paths are recorded as "unmatched" to keep label cardinality bounded
func Metrics(m *metrics.HTTP) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(cw, r)

			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					route = p
				}
			}
			m.Requests.WithLabelValues(route, r.Method, strconv.Itoa(cw.status)).Inc()
			m.Duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}
