// Package domain defines the assessor strategies the check endpoints and the CLI call
package domain

import (
	"context"

	"postguard/internal/core/risk"
)

// TextAssessor scores one text; context may be empty
type TextAssessor interface {
	Assess(ctx context.Context, text, context string) (risk.Assessment, error)
}

// ImageAssessor scores an encoded image and its optional caption
type ImageAssessor interface {
	Assess(ctx context.Context, payload, caption, context string) (risk.Assessment, error)
}

// VideoAssessor scores a transcript and flags its risky segments
type VideoAssessor interface {
	Assess(ctx context.Context, transcript string, segments []risk.Segment, context string) (risk.VideoAssessment, error)
}

// Ports exposed by the assess module
type Ports struct {
	Text  TextAssessor
	Image ImageAssessor
	Video VideoAssessor
}
