package service

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Latency modes accepted by ParseLatency
const (
	LatencyNone      = "none"
	LatencySimulated = "simulated"
)

// Latency is the per-modality wait applied before an assessment completes.
// The zero value waits for nothing
type Latency struct {
	Text       time.Duration
	Image      time.Duration
	Video      time.Duration
	Transcribe time.Duration
}

// SimulatedLatency approximates the cost of a remote model call
func SimulatedLatency() Latency {
	return Latency{
		Text:       800 * time.Millisecond,
		Image:      1200 * time.Millisecond,
		Video:      1500 * time.Millisecond,
		Transcribe: 1500 * time.Millisecond,
	}
}

// ParseLatency maps a config mode to a profile
func ParseLatency(mode string) (Latency, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", LatencyNone:
		return Latency{}, nil
	case LatencySimulated:
		return SimulatedLatency(), nil
	}
	return Latency{}, fmt.Errorf("assess: unknown latency mode %q", mode)
}

// Wait blocks for d or until ctx is done
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
