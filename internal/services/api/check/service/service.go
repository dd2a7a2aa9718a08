// Package service runs the check pipeline: context lookup, assessment, journal
package service

import (
	"context"
	"fmt"

	"postguard/internal/core/risk"
	"postguard/internal/platform/logger"
	"postguard/internal/services/api/check/domain"
	assessdom "postguard/internal/services/assess/domain"
	journaldom "postguard/internal/services/journal/domain"
	ppdom "postguard/internal/services/priorposts/domain"
	trdom "postguard/internal/services/transcribe/domain"
	trsvc "postguard/internal/services/transcribe/service"
)

// Deps are the collaborators of a check
type Deps struct {
	Assess      assessdom.Ports
	Transcriber trdom.Transcriber
	// TranscribeOptions defaults to ja with timestamps
	TranscribeOptions *trdom.Options
	Context           ppdom.Resolver
	Journal           journaldom.RecorderPort
}

type service struct {
	d    Deps
	topt trdom.Options
}

// New constructs the check service
func New(d Deps) domain.Service {
	topt := trdom.DefaultOptions()
	if d.TranscribeOptions != nil {
		topt = *d.TranscribeOptions
	}
	return &service{d: d, topt: topt}
}

// CheckText implements domain.Service
func (s *service) CheckText(ctx context.Context, in domain.TextRequest) (domain.CheckResponse, error) {
	logSettings(ctx, risk.Text, in.Settings)
	pctx, used := s.d.Context.Resolve(ctx, string(in.UserID))

	a, err := s.d.Assess.Text.Assess(ctx, in.Text, pctx)
	if err != nil {
		return domain.CheckResponse{}, fmt.Errorf("check: text: %w", err)
	}
	s.record(ctx, risk.Text, a, 0, used)
	return domain.CheckResponse{Assessment: a, ContextUsed: used}, nil
}

// CheckImage implements domain.Service
func (s *service) CheckImage(ctx context.Context, in domain.ImageRequest) (domain.CheckResponse, error) {
	logSettings(ctx, risk.Image, in.Settings)
	pctx, used := s.d.Context.Resolve(ctx, string(in.UserID))

	a, err := s.d.Assess.Image.Assess(ctx, in.ImageBase64, in.Caption, pctx)
	if err != nil {
		return domain.CheckResponse{}, fmt.Errorf("check: image: %w", err)
	}
	s.record(ctx, risk.Image, a, 0, used)
	return domain.CheckResponse{Assessment: a, ContextUsed: used}, nil
}

// CheckVideo transcribes first, then fetches context, then assesses
func (s *service) CheckVideo(ctx context.Context, in domain.VideoRequest) (domain.VideoResponse, error) {
	logSettings(ctx, risk.Video, in.Settings)

	tr, err := s.d.Transcriber.Transcribe(ctx, in.VideoData, s.topt)
	if err != nil {
		return domain.VideoResponse{}, fmt.Errorf("check: transcribe: %w", err)
	}
	formatted := trsvc.Format(tr)

	pctx, used := s.d.Context.Resolve(ctx, string(in.UserID))

	va, err := s.d.Assess.Video.Assess(ctx, tr.Text, tr.Segments, pctx)
	if err != nil {
		return domain.VideoResponse{}, fmt.Errorf("check: video: %w", err)
	}
	s.record(ctx, risk.Video, va.Assessment, len(va.TimeRanges), used)

	ranges := va.TimeRanges
	if ranges == nil {
		ranges = []risk.TimeRange{}
	}
	return domain.VideoResponse{
		Assessment:             va.Assessment,
		TimeRanges:             ranges,
		Transcription:          tr.Text,
		FormattedTranscription: formatted,
		ContextUsed:            used,
	}, nil
}

func (s *service) record(ctx context.Context, mod risk.Modality, a risk.Assessment, flagged int, used bool) {
	if s.d.Journal == nil {
		return
	}
	s.d.Journal.Record(ctx, journaldom.Event{
		Modality:    mod,
		RiskLevel:   a.RiskLevel,
		Issues:      len(a.Findings()),
		Flagged:     flagged,
		ContextUsed: used,
	})
}

func logSettings(ctx context.Context, mod risk.Modality, st *domain.Settings) {
	if st == nil {
		return
	}
	logger.C(ctx).Debug().
		Str("modality", string(mod)).
		Strs("settings", st.Enabled()).
		Msg("check settings received")
}
