package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"trace":   "trace",
		"debug":   "debug",
		"warning": "warn",
		"error":   "error",
		"":        "info",
		" bogus ": "info",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Fatalf("parseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInitAndHelpers(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Service: "postguard-test", Writer: &buf})

	ctx := WithRequestID(context.Background(), "req-42")
	C(ctx).Info().Msg("ctx-line")
	Named("check").Info().Msg("named-line")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-42"`) {
		t.Fatalf("missing request id in %q", out)
	}
	if !strings.Contains(out, `"component":"check"`) {
		t.Fatalf("missing component in %q", out)
	}
	if !strings.Contains(out, `"service":"postguard-test"`) {
		t.Fatalf("missing service in %q", out)
	}

	if WithRequestID(ctx, "") != ctx {
		t.Fatalf("empty id should return ctx unchanged")
	}
}
