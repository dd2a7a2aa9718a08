// Package module selects the prior-post source and exposes the context ports
package module

import (
	"postguard/internal/modkit"
	"postguard/internal/modkit/repokit"
	"postguard/internal/platform/config"
	phttp "postguard/internal/platform/net/http"
	"postguard/internal/services/priorposts/domain"
	"postguard/internal/services/priorposts/repo"
	"postguard/internal/services/priorposts/service"
)

// Providers accepted by POSTGUARD_CONTEXT_PROVIDER
const (
	ProviderMock = "mock"
	ProviderPG   = "pg"
)

// Options holds configuration settings for the priorposts module
type Options struct {
	Provider string
	Posts    int
	Reposts  int
}

// FromConfig reads POSTGUARD_CONTEXT_* keys under cfg
func FromConfig(cfg config.Conf) Options {
	cc := cfg.Prefix("POSTGUARD_CONTEXT_")
	return Options{
		Provider: cc.MayEnum("PROVIDER", ProviderMock, ProviderMock, ProviderPG),
		Posts:    cc.MayInt("POSTS", domain.DefaultPosts),
		Reposts:  cc.MayInt("REPOSTS", domain.DefaultReposts),
	}
}

// Module implements modkit.Module; it mounts no routes
type Module struct {
	ports    domain.Ports
	provider string
}

// New builds the context ports; the pg provider falls back to the mock when postgres is disabled
func New(deps modkit.Deps) *Module {
	opt := FromConfig(deps.Cfg)

	var src domain.Source = service.Mock{}
	provider := ProviderMock
	if opt.Provider == ProviderPG {
		if deps.PG != nil {
			src = repokit.MustBind(repo.NewPG(), deps.PG)
			provider = ProviderPG
		} else {
			deps.Log.Warn().Msg("context provider pg requested but postgres is disabled, using mock feed")
		}
	}

	ext := service.New(src, service.Config{Posts: opt.Posts, Reposts: opt.Reposts})
	fetches := service.NewFetchCounter(deps.Metrics)
	deps.Log.Info().Str("provider", provider).Msg("context feed ready")

	return &Module{
		ports: domain.Ports{
			Context:  ext,
			Resolver: service.NewResolver(ext, fetches),
		},
		provider: provider,
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "priorposts" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(phttp.Router) {}

// Provider reports the active source
func (m *Module) Provider() string { return m.provider }
