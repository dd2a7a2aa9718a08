package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"postguard/internal/platform/config"
	"postguard/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server wraps chi and the stdlib server with graceful shutdown
type Server struct {
	addr     string
	mux      *chi.Mux
	srv      *stdhttp.Server
	drainFor time.Duration
}

// NewServer reads PORT, READ_TIMEOUT and SHUTDOWN_GRACE from cfg
// opts receive the mux before any routes are mounted
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("PORT", ":4000")
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr:     addr,
		mux:      m,
		drainFor: cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       cfg.MayDuration("READ_TIMEOUT", 60*time.Second),
		},
	}
}

// Router returns the Router facade over the mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Handler exposes the mux for tests
func (s *Server) Handler() stdhttp.Handler { return s.mux }

// Addr returns the listen address
func (s *Server) Addr() string { return s.addr }

// Run serves until ctx is done, then drains in flight requests
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Msg("http listening")
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.drainFor).Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.drainFor)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	return nil
}
