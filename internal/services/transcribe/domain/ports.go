// Package domain defines the transcription port used by check-video and the cli
package domain

import (
	"context"

	"postguard/internal/core/risk"
)

// Options tune one transcription
type Options struct {
	// Language is a BCP 47 tag; only the base language is sent upstream
	Language       string
	WithTimestamps bool
}

// DefaultOptions is what check-video asks for
func DefaultOptions() Options { return Options{Language: "ja", WithTimestamps: true} }

// Result is a transcript and its timed segments; Segments is empty without timestamps
type Result struct {
	Text     string         `json:"text"`
	Segments []risk.Segment `json:"segments"`
	Language string         `json:"language"`
	Duration float64        `json:"duration"`
}

// Transcriber turns an encoded video payload into text
type Transcriber interface {
	Transcribe(ctx context.Context, payload string, opt Options) (Result, error)
}

// Ports exposed by the transcribe module
type Ports struct {
	Transcriber Transcriber
}
