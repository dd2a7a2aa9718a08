// Command postguard-check runs the risk pipeline locally on text, image or video files
package main

import (
	"context"
	"os"
	"os/signal"

	"postguard/internal/platform/config"
	"postguard/internal/platform/logger"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		logger.Get().Fatal().Err(err).Msg("load .env")
	}
	opt := logger.FromEnv()
	if opt.Service == "" {
		opt.Service = "postguard-check"
	}
	if os.Getenv("LOG_FORMAT") == "" {
		opt.Format = "console"
	}
	opt.Writer = os.Stderr
	logger.Init(opt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
