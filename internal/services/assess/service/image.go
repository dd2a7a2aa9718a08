package service

import (
	"context"
	"time"

	"postguard/internal/core/risk"
	"postguard/internal/core/rulepack"
)

// Image implements domain.ImageAssessor
type Image struct {
	text  *Text
	pack  *rulepack.Pack
	delay time.Duration
	m     *Metrics
}

// Assess derives the image signal from the payload length, then merges in the caption verdict.
// Caption issues come first; a clean caption contributes nothing
func (s *Image) Assess(ctx context.Context, payload, caption, context string) (risk.Assessment, error) {
	started := time.Now()
	if err := Wait(ctx, s.delay); err != nil {
		return risk.Assessment{}, err
	}

	level := risk.Low
	var issues []string
	if caption != "" {
		c, err := s.text.assess(ctx, caption, context)
		if err != nil {
			return risk.Assessment{}, err
		}
		if f := c.Findings(); len(f) > 0 {
			issues = append(issues, f...)
			level = c.RiskLevel
		}
	}
	if rule, ok := s.pack.ImageRuleFor(len(payload) % 10); ok {
		issues = append(issues, rule.Issue)
		level = risk.Max(level, rule.Level)
	}

	a := risk.Clean()
	if len(issues) > 0 {
		a = risk.Assessment{
			RiskLevel:   level,
			Issues:      issues,
			Suggestions: s.text.suggest.Suggest(issues, level),
		}
	}
	s.m.observe(risk.Image, a.RiskLevel, started)
	return a, nil
}
