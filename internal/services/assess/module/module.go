// Package module wires the assessors for the api and cli binaries
package module

import (
	"fmt"

	"postguard/internal/core/rulepack"
	"postguard/internal/modkit"
	phttp "postguard/internal/platform/net/http"
	"postguard/internal/services/assess/domain"
	"postguard/internal/services/assess/service"
)

// Module implements modkit.Module; it mounts no routes
type Module struct {
	deps    modkit.Deps
	pack    *rulepack.Pack
	latency service.Latency
	ports   domain.Ports
}

// New loads the rulepack and builds the assessors from config
func New(deps modkit.Deps, overrides Options) (*Module, error) {
	opt := FromConfig(deps.Cfg)
	if overrides.Latency != "" {
		opt.Latency = overrides.Latency
	}
	if overrides.Rulepack != "" {
		opt.Rulepack = overrides.Rulepack
	}
	if overrides.SegmentWorkers != 0 {
		opt.SegmentWorkers = overrides.SegmentWorkers
	}

	pack, err := loadPack(opt.Rulepack)
	if err != nil {
		return nil, err
	}
	lat, err := service.ParseLatency(opt.Latency)
	if err != nil {
		return nil, err
	}

	var m *service.Metrics
	if deps.Metrics != nil {
		m = service.NewMetrics(deps.Metrics)
	}
	svc := service.New(pack, service.Config{
		Latency:        lat,
		SegmentWorkers: opt.SegmentWorkers,
		Metrics:        m,
	})

	deps.Log.Info().
		Str("rulepack", pack.Version).
		Str("source", pack.Source).
		Str("latency", opt.Latency).
		Int("segment_workers", opt.SegmentWorkers).
		Msg("assess ready")

	return &Module{deps: deps, pack: pack, latency: lat, ports: svc.Ports()}, nil
}

func loadPack(path string) (*rulepack.Pack, error) {
	if path == "" {
		return rulepack.Load()
	}
	p, err := rulepack.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assess: rulepack %s: %w", path, err)
	}
	return p, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "assess" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(phttp.Router) {}

// Pack is the loaded rulepack, shared with the meta endpoints
func (m *Module) Pack() *rulepack.Pack { return m.pack }

// Latency is the active profile; the transcriber reuses its Transcribe wait
func (m *Module) Latency() service.Latency { return m.latency }
