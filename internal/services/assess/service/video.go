package service

import (
	"context"
	"time"

	"postguard/internal/core/risk"

	"golang.org/x/sync/errgroup"
)

// Video implements domain.VideoAssessor
type Video struct {
	text    *Text
	workers int
	delay   time.Duration
	m       *Metrics
}

// Assess scores the whole transcript with context, and every segment on its own without it.
// The two verdicts may disagree; timeRanges keeps segment input order
func (s *Video) Assess(ctx context.Context, transcript string, segments []risk.Segment, context string) (risk.VideoAssessment, error) {
	started := time.Now()
	if err := Wait(ctx, s.delay); err != nil {
		return risk.VideoAssessment{}, err
	}

	top, err := s.text.assess(ctx, transcript, context)
	if err != nil {
		return risk.VideoAssessment{}, err
	}

	ranges, err := s.flag(ctx, segments)
	if err != nil {
		return risk.VideoAssessment{}, err
	}

	s.m.observe(risk.Video, top.RiskLevel, started)
	s.m.flagged(len(ranges))
	return risk.VideoAssessment{Assessment: top, TimeRanges: ranges}, nil
}

func (s *Video) flag(ctx context.Context, segments []risk.Segment) ([]risk.TimeRange, error) {
	per := make([]risk.Assessment, len(segments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range segments {
		i := i
		g.Go(func() error {
			a, err := s.text.assess(gctx, segments[i].Text, "")
			if err != nil {
				return err
			}
			per[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]risk.TimeRange, 0, len(segments))
	for i, a := range per {
		if a.RiskLevel == risk.Low || len(a.Issues) == 0 || a.Issues[0] == risk.NoIssues {
			continue
		}
		out = append(out, risk.TimeRange{Start: segments[i].Start, End: segments[i].End, Issue: a.Issues[0]})
	}
	return out, nil
}
