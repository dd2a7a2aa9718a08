package pg

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	got := Compact("SELECT id,\n\t  body\nFROM prior_posts   WHERE user_id = $1")
	if got != "SELECT id, body FROM prior_posts WHERE user_id = $1" {
		t.Fatalf("Compact = %q", got)
	}
}

func TestTracer_SlowIsWarn(t *testing.T) {
	var buf bytes.Buffer
	root := zerolog.New(&buf).Level(zerolog.ErrorLevel)

	tr := Tracer(root)
	tr.OnQuery(context.Background(), QueryEvent{SQL: "select 1", ElapsedUS: 1500})
	tr.OnQuery(context.Background(), QueryEvent{SQL: "select pg_sleep(1)", ElapsedUS: 1_000_000, Slow: true})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines regardless of root level, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"level":"info"`) || !strings.Contains(lines[0], `"elapsed_ms":1.5`) {
		t.Fatalf("first line = %s", lines[0])
	}
	if !strings.Contains(lines[1], `"level":"warn"`) || !strings.Contains(lines[1], `"component":"pg"`) {
		t.Fatalf("second line = %s", lines[1])
	}
}

func TestParseConfig_AppNameAndMaxConns(t *testing.T) {
	pc, err := ParseConfig(Config{URL: "postgres://u:p@localhost:5432/db", MaxConns: 3, AppName: "postguard-api"})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if pc.MaxConns != 3 {
		t.Fatalf("MaxConns = %d", pc.MaxConns)
	}
	if pc.ConnConfig.RuntimeParams["application_name"] != "postguard-api" {
		t.Fatalf("application_name = %q", pc.ConnConfig.RuntimeParams["application_name"])
	}
	if _, err := ParseConfig(Config{URL: "::not a url"}); err == nil {
		t.Fatalf("want parse error")
	}
}
