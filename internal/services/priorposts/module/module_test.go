package module

import (
	"context"
	"strings"
	"testing"

	"postguard/internal/modkit"
	"postguard/internal/platform/config"
	"postguard/internal/services/priorposts/domain"

	"github.com/rs/zerolog"
)

func TestNew_PGWithoutStoreFallsBack(t *testing.T) {
	t.Setenv("PGT_PP_A_POSTGUARD_CONTEXT_PROVIDER", "pg")
	m := New(modkit.Deps{Log: zerolog.Nop(), Cfg: config.New().Prefix("PGT_PP_A_")})
	if m.Provider() != ProviderMock {
		t.Fatalf("provider %q", m.Provider())
	}
	p := m.Ports().(domain.Ports)
	text, used := p.Resolver.Resolve(context.Background(), "u1")
	if !used || !strings.Contains(text, "RT @user123") {
		t.Fatalf("resolve %q %v", text, used)
	}
}

func TestNew_CountsFromConfig(t *testing.T) {
	t.Setenv("PGT_PP_B_POSTGUARD_CONTEXT_POSTS", "1")
	t.Setenv("PGT_PP_B_POSTGUARD_CONTEXT_REPOSTS", "1")
	m := New(modkit.Deps{Log: zerolog.Nop(), Cfg: config.New().Prefix("PGT_PP_B_")})
	text, err := m.Ports().(domain.Ports).Context.Extract(context.Background(), "u1")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if n := len(strings.Split(text, "\n\n")); n != 2 {
		t.Fatalf("got %d entries: %q", n, text)
	}
}
