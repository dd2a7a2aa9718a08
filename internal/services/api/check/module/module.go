// Package module wires the check endpoints into the API
package module

import (
	"postguard/internal/modkit"
	phttp "postguard/internal/platform/net/http"
	"postguard/internal/platform/net/middleware"
	checkhttp "postguard/internal/services/api/check/http"
	"postguard/internal/services/api/check/service"
)

// Ports are the collaborators the check module consumes
type Ports = service.Deps

// Module implements modkit.Module
type Module struct {
	b modkit.Built
}

// New constructs the check module; pass collaborators with modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	o := FromConfig(deps.Cfg)
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("check"),
		modkit.WithPrefix("/check"),
		modkit.WithMiddlewares(middleware.RateLimit(o.RateRPS, o.RateBurst)),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok {
		panic("check module: expected WithPorts(check/module.Ports)")
	}
	if ports.Assess.Text == nil || ports.Assess.Image == nil || ports.Assess.Video == nil ||
		ports.Transcriber == nil || ports.Context == nil {
		panic("check module: Ports missing assessors, transcriber or context resolver")
	}

	svc := service.New(ports)
	maxBytes := int64(o.MaxBodyMB) << 20
	b.Register = func(r phttp.Router) {
		checkhttp.Register(r, svc, checkhttp.Options{MaxBytes: maxBytes})
	}

	deps.Log.Info().
		Int("max_body_mb", o.MaxBodyMB).
		Float64("rate_rps", o.RateRPS).
		Msg("check endpoints ready")
	return &Module{b: b}
}

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r phttp.Router) { m.b.Mount(r) }

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.b.Name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return nil }
