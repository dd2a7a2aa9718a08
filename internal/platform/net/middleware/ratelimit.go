package middleware

import (
	stdjson "encoding/json"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit admits rps requests per second with the given burst across all clients
// Rejected requests get 429 {"error": ...}; rps <= 0 disables limiting
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	lim := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !lim.Allow() {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = stdjson.NewEncoder(w).Encode(map[string]string{"error": "Too Many Requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
