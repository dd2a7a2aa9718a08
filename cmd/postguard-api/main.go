// @title         Postguard API
// @version       0.1.0
// @description   Risk checks for social posts before they are published

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"postguard/internal/platform/config"
	"postguard/internal/platform/logger"
	"postguard/internal/platform/metrics"
	phttp "postguard/internal/platform/net/http"
	"postguard/internal/platform/net/middleware"
	"postguard/internal/platform/store"

	"postguard/internal/services/api"

	"github.com/go-chi/chi/v5"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		logger.Get().Fatal().Err(err).Msg("load .env")
	}
	opt := logger.FromEnv()
	if opt.Service == "" {
		opt.Service = "postguard-api"
	}
	logger.Init(opt)
	l := logger.Get()

	root := config.New()
	apiCfg := root.Prefix("POSTGUARD_API_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// every backend is optional; disabled ones stay nil
	st, err := store.Open(ctx, store.ConfigFrom(root, "postguard"), store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var reg *metrics.Registry
	if apiCfg.MayBool("METRICS", true) {
		reg = metrics.New()
	}

	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(middleware.Heartbeat("/health"))
		if reg != nil {
			m.Handle("/metrics", reg.Handler())
		}
	})

	if err := api.Mount(srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		Logger:         l,
		Metrics:        reg,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	}); err != nil {
		l.Fatal().Err(err).Msg("api mount failed")
	}

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
