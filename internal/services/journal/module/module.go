// Package module wires the journal sinks from the enabled stores
package module

import (
	"postguard/internal/modkit"
	"postguard/internal/modkit/repokit"
	phttp "postguard/internal/platform/net/http"
	"postguard/internal/services/journal/domain"
	"postguard/internal/services/journal/repo"
	"postguard/internal/services/journal/service"
)

// Module implements modkit.Module; it mounts no routes
type Module struct {
	ports domain.Ports
	sinks []string
}

// New records to postgres and clickhouse when each is enabled
func New(deps modkit.Deps) *Module {
	jc := deps.Cfg.Prefix("POSTGUARD_JOURNAL_")
	var sinks []service.NamedSink
	var summary domain.SummaryPort

	if deps.PG != nil && jc.MayBool("PG", true) {
		r := repokit.MustBind(repo.NewPG(), deps.PG)
		sinks = append(sinks, service.NamedSink{Name: "pg", Sink: r})
		summary = r
	}
	if deps.CH != nil && jc.MayBool("CH", true) {
		sinks = append(sinks, service.NamedSink{Name: "ch", Sink: repo.NewCH(deps.CH)})
	}

	svc := service.New(service.Config{Timeout: jc.MayDuration("TIMEOUT", 0)}, sinks...)
	deps.Log.Info().Strs("sinks", svc.Sinks()).Msg("journal ready")
	return &Module{ports: domain.Ports{Recorder: svc, Summary: summary}, sinks: svc.Sinks()}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "journal" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(phttp.Router) {}
