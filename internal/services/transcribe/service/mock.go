// Package service implements the transcription providers and transcript formatting
package service

import (
	"context"
	"strings"
	"time"

	"postguard/internal/core/risk"
	"postguard/internal/services/transcribe/domain"
)

var mockSegments = []risk.Segment{
	{ID: 0, Start: 0.0, End: 3.8, Text: "こんにちは、今日は新製品の発表会についてお話しします。"},
	{ID: 1, Start: 4.2, End: 9.6, Text: "この製品は多くの人々の生活を変える可能性を秘めています。"},
	{ID: 2, Start: 10.1, End: 16.5, Text: "詳細については後ほど説明しますが、とても革新的な機能が搭載されています。"},
	{ID: 3, Start: 17.0, End: 21.3, Text: "それでは、具体的な特徴を見ていきましょう。"},
}

// Mock returns a fixed product-announcement transcript for any payload
type Mock struct {
	// Delay simulates the upstream call
	Delay time.Duration
}

// Transcribe satisfies domain.Transcriber
func (m Mock) Transcribe(ctx context.Context, _ string, opt domain.Options) (domain.Result, error) {
	lang, err := baseLanguage(opt.Language)
	if err != nil {
		return domain.Result{}, err
	}
	if err := wait(ctx, m.Delay); err != nil {
		return domain.Result{}, err
	}

	var b strings.Builder
	for _, s := range mockSegments {
		b.WriteString(s.Text)
	}
	r := domain.Result{
		Text:     b.String(),
		Language: lang,
		Duration: mockSegments[len(mockSegments)-1].End,
	}
	if opt.WithTimestamps {
		r.Segments = append([]risk.Segment(nil), mockSegments...)
	}
	return r, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
