// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"postguard/internal/core/rulepack"
	"postguard/internal/core/version"
	"postguard/internal/modkit/httpkit"
	perr "postguard/internal/platform/errors"
)

// Probe checks one backing store; a nil Ping means the store is disabled
type Probe struct {
	Name string
	Ping func(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Probes      []Probe
	Rulepack    *rulepack.Pack
	// Providers names the active collaborators, e.g. transcribe=mock
	Providers map[string]string
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/rulepack", h.rulepack)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"` // ok fail skipped
	Error  string `json:"error,omitempty"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name      string            `json:"name"`
	Started   string            `json:"started"`
	Uptime    int64             `json:"uptime"`
	Providers map[string]string `json:"providers,omitempty"`
}

// @Summary Health check
// @Tags Meta
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// ready runs every probe under one deadline. Disabled stores report skipped and
// do not degrade the status: the check pipeline runs without them
//
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	out := ReadyResponse{Status: "ok", Checks: make([]ReadyCheck, 0, len(h.deps.Probes))}
	for _, p := range h.deps.Probes {
		c := ReadyCheck{Name: p.Name, Status: "skipped"}
		if p.Ping != nil {
			c.Status = "ok"
			if err := p.Ping(ctx); err != nil {
				c.Status, c.Error = "fail", err.Error()
				out.Status = "fail"
			}
		}
		out.Checks = append(out.Checks, c)
	}
	out.Now = time.Now().UTC().Format(time.RFC3339)
	return out, nil
}

// @Summary Build and version info
// @Tags Meta
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info, uptime and active providers
// @Tags Meta
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:      h.deps.ServiceName,
		Started:   h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:    int64(time.Since(h.deps.StartedAt) / time.Second),
		Providers: h.deps.Providers,
	}, nil
}

// @Summary Loaded rulepack summary
// @Tags Meta
// @Router /meta/rulepack [get]
func (h *handlers) rulepack(_ *http.Request) (any, error) {
	if h.deps.Rulepack == nil {
		return nil, perr.Unavailablef("rulepack not loaded")
	}
	return h.deps.Rulepack.Summary(), nil
}
