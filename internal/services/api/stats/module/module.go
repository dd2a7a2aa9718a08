// Package module wires stats into the API using modkit
package module

import (
	"postguard/internal/modkit"
	phttp "postguard/internal/platform/net/http"
	statshttp "postguard/internal/services/api/stats/http"
	statssvc "postguard/internal/services/api/stats/service"
	journaldom "postguard/internal/services/journal/domain"
)

// Ports are consumed by the stats module; Summary may be nil
type Ports struct {
	Summary journaldom.SummaryPort
}

// Module implements the stats module
type Module struct {
	b   modkit.Built
	svc *statssvc.Svc
}

// New constructs the stats module
func New(_ modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("stats"), modkit.WithPrefix("/stats")}, opts...)...)

	var p Ports
	if b.Ports != nil {
		pp, ok := b.Ports.(Ports)
		if !ok {
			panic("stats module: expected WithPorts(stats/module.Ports)")
		}
		p = pp
	}

	m := &Module{svc: statssvc.New(p.Summary)}
	external := b.Register
	b.Register = func(r phttp.Router) {
		statshttp.Register(r, m.svc)
		external(r)
	}
	m.b = b
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r phttp.Router) { m.b.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Ports exposes the stats service
func (m *Module) Ports() any { return m.svc }
