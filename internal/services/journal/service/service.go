// Package service fans check outcome events out to the configured sinks
package service

import (
	"context"
	"time"

	"postguard/internal/platform/logger"
	"postguard/internal/services/journal/domain"

	"github.com/google/uuid"
)

// NamedSink pairs a sink with the name used in logs
type NamedSink struct {
	Name string
	Sink domain.Sink
}

// Config for the journal
type Config struct {
	// Timeout bounds each sink write; it is detached from the request deadline
	Timeout time.Duration
	Now     func() time.Time
}

// Service implements domain.RecorderPort
type Service struct {
	sinks []NamedSink
	cfg   Config
}

// New constructs a journal over sinks; with no sinks Record only assigns ids
func New(cfg Config, sinks ...NamedSink) *Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{sinks: sinks, cfg: cfg}
}

// Record writes ev to every sink; failures are logged and dropped
func (s *Service) Record(ctx context.Context, ev domain.Event) {
	s.fill(&ev)
	if len(s.sinks) == 0 {
		return
	}

	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Timeout)
	defer cancel()
	for _, ns := range s.sinks {
		if err := ns.Sink.Write(wctx, []domain.Event{ev}); err != nil {
			logger.C(ctx).Warn().Err(err).
				Str("sink", ns.Name).
				Str("event_id", ev.ID.String()).
				Msg("journal write failed")
		}
	}
}

// Sinks lists the configured sink names
func (s *Service) Sinks() []string {
	out := make([]string, len(s.sinks))
	for i, ns := range s.sinks {
		out[i] = ns.Name
	}
	return out
}

func (s *Service) fill(ev *domain.Event) {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.At.IsZero() {
		ev.At = s.cfg.Now().UTC()
	}
}
