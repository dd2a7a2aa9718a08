package api

import (
	"fmt"

	"postguard/internal/modkit"
	"postguard/internal/modkit/module"
	checkmod "postguard/internal/services/api/check/module"
	assessmod "postguard/internal/services/assess/module"
	journalmod "postguard/internal/services/journal/module"
	ppmod "postguard/internal/services/priorposts/module"
	trmod "postguard/internal/services/transcribe/module"

	assessdom "postguard/internal/services/assess/domain"
	journaldom "postguard/internal/services/journal/domain"
	ppdom "postguard/internal/services/priorposts/domain"
	trdom "postguard/internal/services/transcribe/domain"
)

// Pipeline holds the route-less modules both binaries share
type Pipeline struct {
	Assess     *assessmod.Module
	Transcribe *trmod.Module
	PriorPosts *ppmod.Module
	Journal    *journalmod.Module
}

// NewPipeline builds assess, transcribe, priorposts and journal from deps
// The transcriber waits the same simulated latency the assessors use
func NewPipeline(deps modkit.Deps, assess assessmod.Options) (*Pipeline, error) {
	am, err := assessmod.New(deps, assess)
	if err != nil {
		return nil, fmt.Errorf("assess: %w", err)
	}
	tm, err := trmod.New(deps, am.Latency().Transcribe)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}
	return &Pipeline{
		Assess:     am,
		Transcribe: tm,
		PriorPosts: ppmod.New(deps),
		Journal:    journalmod.New(deps),
	}, nil
}

// Modules lists the pipeline modules; none of them mounts routes
func (p *Pipeline) Modules() []modkit.Module {
	return []modkit.Module{p.Assess, p.Transcribe, p.PriorPosts, p.Journal}
}

// CheckPorts resolves the collaborators of the check service from the module ports
func (p *Pipeline) CheckPorts() checkmod.Ports {
	opts := p.Transcribe.Options()
	return checkmod.Ports{
		Assess:            module.MustPortsOf[assessdom.Ports](p.Assess),
		Transcriber:       module.MustPortsOf[trdom.Transcriber](p.Transcribe),
		TranscribeOptions: &opts,
		Context:           module.MustPortsOf[ppdom.Resolver](p.PriorPosts),
		Journal:           module.MustPortsOf[journaldom.RecorderPort](p.Journal),
	}
}

// Summary is the journal summary port; nil when postgres is disabled
func (p *Pipeline) Summary() journaldom.SummaryPort {
	s, _ := module.PortsOf[journaldom.SummaryPort](p.Journal)
	return s
}

// Providers names the active collaborators for /meta/service
func (p *Pipeline) Providers() map[string]string {
	return map[string]string{
		"rulepack":   p.Assess.Pack().Version,
		"transcribe": p.Transcribe.Provider(),
		"context":    p.PriorPosts.Provider(),
	}
}
