// Package service implements the lexical assessors behind domain.Ports
package service

import (
	"postguard/internal/core/amplifier"
	"postguard/internal/core/rulepack"
	"postguard/internal/core/scanner"
	"postguard/internal/core/suggest"
	"postguard/internal/services/assess/domain"
)

// Config for the assessors
type Config struct {
	Latency        Latency
	SegmentWorkers int
	Metrics        *Metrics
}

// Service bundles the three assessors over one rulepack
type Service struct {
	Text  *Text
	Image *Image
	Video *Video
}

// New builds the assessors; all of them are safe for concurrent use
func New(p *rulepack.Pack, cfg Config) *Service {
	w := cfg.SegmentWorkers
	if w <= 0 {
		w = 1
	}
	t := &Text{
		scan:    scanner.New(p),
		amp:     amplifier.New(p),
		suggest: suggest.New(p),
		delay:   cfg.Latency.Text,
		m:       cfg.Metrics,
	}
	return &Service{
		Text:  t,
		Image: &Image{text: t, pack: p, delay: cfg.Latency.Image, m: cfg.Metrics},
		Video: &Video{text: t, workers: w, delay: cfg.Latency.Video, m: cfg.Metrics},
	}
}

// Ports returns the assessors as domain ports
func (s *Service) Ports() domain.Ports {
	return domain.Ports{Text: s.Text, Image: s.Image, Video: s.Video}
}
