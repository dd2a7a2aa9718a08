package service

import (
	"context"

	"postguard/internal/platform/logger"
	"postguard/internal/platform/metrics"
	"postguard/internal/services/priorposts/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// Fetch outcomes recorded on postguard_context_fetch_total
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeSkipped = "skipped"
)

// NewFetchCounter registers the context fetch counter on reg; a nil reg skips registration
func NewFetchCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Name:      "context_fetch_total",
		Help:      "Prior-post context lookups by outcome.",
	}, []string{"outcome"})
	if reg != nil {
		reg.MustRegister(c)
	}
	return c
}

// Resolver implements domain.Resolver
type Resolver struct {
	port    domain.ContextPort
	fetches *prometheus.CounterVec
}

// NewResolver wraps port; fetches may be nil
func NewResolver(port domain.ContextPort, fetches *prometheus.CounterVec) *Resolver {
	return &Resolver{port: port, fetches: fetches}
}

// Resolve returns the user's context; an empty user id skips the lookup and a
// failed lookup is logged and reported as unused
func (r *Resolver) Resolve(ctx context.Context, userID string) (string, bool) {
	if userID == "" {
		r.count(OutcomeSkipped)
		return "", false
	}
	text, err := r.port.Extract(ctx, userID)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("user_id", userID).Msg("context fetch failed, continuing without context")
		r.count(OutcomeError)
		return "", false
	}
	r.count(OutcomeOK)
	return text, true
}

func (r *Resolver) count(outcome string) {
	if r.fetches != nil {
		r.fetches.WithLabelValues(outcome).Inc()
	}
}
