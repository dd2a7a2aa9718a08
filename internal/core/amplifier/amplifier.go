// Package amplifier escalates content that states an opinion right after critical prior posts
package amplifier

import (
	"strings"

	"postguard/internal/core/risk"
	"postguard/internal/core/rulepack"
)

// Finding is what the amplifier contributes when it fires
type Finding struct {
	Issue string
	// Floor is the minimum level the content is raised to
	Floor risk.Level
}

// Amplifier checks the two-marker rule of a rulepack
type Amplifier struct {
	rule rulepack.Amplifier
}

// New returns an amplifier for p; a pack without an amplifier rule never fires
func New(p *rulepack.Pack) *Amplifier { return &Amplifier{rule: p.Amplifier} }

// Apply fires when context is non-empty, context contains the context marker
// and text contains the text marker
func (a *Amplifier) Apply(text, context string) (Finding, bool) {
	r := a.rule
	if context == "" || r.ContextMarker == "" {
		return Finding{}, false
	}
	if !strings.Contains(context, r.ContextMarker) || !strings.Contains(text, r.TextMarker) {
		return Finding{}, false
	}
	return Finding{Issue: r.Issue, Floor: r.Floor}, true
}

// Raise applies f to level; it never lowers it
func (f Finding) Raise(level risk.Level) risk.Level { return risk.Max(level, f.Floor) }
