package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type portFunc func(ctx context.Context, userID string) (string, error)

func (f portFunc) Extract(ctx context.Context, userID string) (string, error) { return f(ctx, userID) }

func TestResolver(t *testing.T) {
	c := NewFetchCounter(prometheus.NewRegistry())
	calls := 0
	r := NewResolver(portFunc(func(_ context.Context, u string) (string, error) {
		calls++
		if u == "broken" {
			return "", errors.New("boom")
		}
		return "ctx for " + u, nil
	}), c)

	if text, used := r.Resolve(context.Background(), ""); text != "" || used {
		t.Fatalf("empty user: %q %v", text, used)
	}
	if calls != 0 {
		t.Fatalf("empty user should not call the port")
	}
	if text, used := r.Resolve(context.Background(), "alice"); text != "ctx for alice" || !used {
		t.Fatalf("ok: %q %v", text, used)
	}
	if text, used := r.Resolve(context.Background(), "broken"); text != "" || used {
		t.Fatalf("error: %q %v", text, used)
	}

	for outcome, want := range map[string]float64{OutcomeOK: 1, OutcomeError: 1, OutcomeSkipped: 1} {
		if got := testutil.ToFloat64(c.WithLabelValues(outcome)); got != want {
			t.Fatalf("%s = %v", outcome, got)
		}
	}
}

func TestResolver_EmptyContextStillUsed(t *testing.T) {
	r := NewResolver(portFunc(func(context.Context, string) (string, error) { return "", nil }), nil)
	if _, used := r.Resolve(context.Background(), "u"); !used {
		t.Fatalf("successful lookup should count as used")
	}
}
