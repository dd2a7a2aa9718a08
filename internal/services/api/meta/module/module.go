// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"postguard/internal/core/rulepack"
	"postguard/internal/modkit"
	phttp "postguard/internal/platform/net/http"
	"postguard/internal/platform/store"
	metahttp "postguard/internal/services/api/meta/http"
)

// Ports carry what meta reports on
type Ports struct {
	Rulepack  *rulepack.Pack
	Providers map[string]string
}

// Module implements the modkit.Module interface
type Module struct {
	b modkit.Built
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	p, _ := b.Ports.(Ports)
	hd := metahttp.Deps{
		ServiceName: "postguard-api",
		StartedAt:   time.Now(),
		Probes:      []metahttp.Probe{{Name: "pg"}, {Name: "ch"}},
		Rulepack:    p.Rulepack,
		Providers:   p.Providers,
	}
	if pg, ok := deps.PG.(store.Pinger); ok {
		hd.Probes[0].Ping = pg.Ping
	}
	if deps.CH != nil {
		hd.Probes[1].Ping = deps.CH.Ping
	}

	external := b.Register
	b.Register = func(r phttp.Router) {
		metahttp.Register(r, hd)
		external(r)
	}
	return &Module{b: b}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r phttp.Router) { m.b.Mount(r) }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
