package modkit

import (
	"net/http"

	phttp "postguard/internal/platform/net/http"
)

// Built is the resolved option set a module keeps
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(phttp.Router)
}

// Build applies opts and fills defaults; the middleware slice is copied
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(phttp.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Mount attaches b under its prefix with its middleware, then runs Register
// An empty prefix registers on r directly
func (b Built) Mount(r phttp.Router) {
	if b.Prefix == "" {
		if len(b.Mw) > 0 {
			r.Group(func(g phttp.Router) {
				g.Use(b.Mw...)
				b.Register(g)
			})
			return
		}
		b.Register(r)
		return
	}
	r.Route(b.Prefix, func(sub phttp.Router) {
		if len(b.Mw) > 0 {
			sub.Use(b.Mw...)
		}
		b.Register(sub)
	})
}
