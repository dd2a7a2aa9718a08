package httpkit

import (
	"net/http"
	"time"

	"postguard/internal/platform/metrics"
	"postguard/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack; zero values disable the optional layers
type StackOptions struct {
	CORSOrigins []string
	RateRPS     float64
	RateBurst   int
	Timeout     time.Duration
	SlowLog     time.Duration
	Metrics     *metrics.HTTP
}

// CommonStack returns the baseline middleware for the api scope
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	out := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.LogContext(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowLog}),
	}
	if o.Metrics != nil {
		out = append(out, middleware.Metrics(o.Metrics))
	}
	out = append(out, middleware.RecoverJSON, middleware.NoCache())
	if len(o.CORSOrigins) > 0 {
		out = append(out, middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}))
	}
	out = append(out, middleware.RateLimit(o.RateRPS, o.RateBurst))
	if o.Timeout > 0 {
		out = append(out, middleware.Timeout(o.Timeout))
	}
	return out
}
