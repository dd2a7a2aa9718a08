package store

import (
	"context"
	"fmt"
	"time"

	"postguard/internal/platform/logger"
	chx "postguard/internal/platform/store/ch"
	"postguard/internal/platform/store/pg"
)

// openPG opens the pool and only publishes the adapter once a ping succeeds
func openPG(ctx context.Context, cfg Config, log logger.Logger) (*pgAdapter, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(log)
	}
	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectRetries
	if attempts <= 0 {
		attempts = 20
	}
	timeout := cfg.PG.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	err = retry(ctx, attempts, 150*time.Millisecond, 2*time.Second, func() error {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return p.Pool.Ping(pctx)
	})
	if err != nil {
		p.Close()
		return nil, err
	}
	return newPGAdapter(p), nil
}

func openCH(ctx context.Context, cfg Config) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{URL: cfg.CH.URL, AppName: cfg.AppName})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}

// retry calls fn until it succeeds, ctx ends or attempts run out, doubling the wait up to ceiling
func retry(ctx context.Context, attempts int, start, ceiling time.Duration, fn func() error) error {
	var last error
	wait := start
	for i := 0; i < attempts; i++ {
		if last = fn(); last == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
		if wait > ceiling {
			wait = ceiling
		}
	}
	return fmt.Errorf("gave up after %d attempts: %w", attempts, last)
}
