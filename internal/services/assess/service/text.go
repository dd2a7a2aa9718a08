package service

import (
	"context"
	"time"

	"postguard/internal/core/amplifier"
	"postguard/internal/core/risk"
	"postguard/internal/core/scanner"
	"postguard/internal/core/suggest"
)

// Text implements domain.TextAssessor
type Text struct {
	scan    *scanner.Scanner
	amp     *amplifier.Amplifier
	suggest *suggest.Generator
	delay   time.Duration
	m       *Metrics
}

// Assess scans text, applies the amplifier when context is set and attaches suggestions
func (s *Text) Assess(ctx context.Context, text, context string) (risk.Assessment, error) {
	started := time.Now()
	a, err := s.assess(ctx, text, context)
	if err != nil {
		return risk.Assessment{}, err
	}
	s.m.observe(risk.Text, a.RiskLevel, started)
	return a, nil
}

// assess is shared with the image and video assessors, which record their own metrics
func (s *Text) assess(ctx context.Context, text, context string) (risk.Assessment, error) {
	if err := Wait(ctx, s.delay); err != nil {
		return risk.Assessment{}, err
	}
	return s.evaluate(text, context), nil
}

func (s *Text) evaluate(text, context string) risk.Assessment {
	matches, level := s.scan.Scan(text)
	issues := make([]string, 0, len(matches)+1)
	for _, m := range matches {
		issues = append(issues, m.Issue)
	}
	if f, ok := s.amp.Apply(text, context); ok {
		issues = append(issues, f.Issue)
		level = f.Raise(level)
	}
	if len(issues) == 0 {
		return risk.Clean()
	}
	return risk.Assessment{
		RiskLevel:   level,
		Issues:      issues,
		Suggestions: s.suggest.Suggest(issues, level),
	}
}
