package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"postguard/internal/core/risk"
	"postguard/internal/services/transcribe/domain"

	openai "github.com/sashabaranov/go-openai"
)

// WhisperConfig configures the OpenAI transcription provider
type WhisperConfig struct {
	APIKey  string
	BaseURL string // empty uses the public API
	Model   string // empty uses whisper-1
}

// Whisper transcribes through the OpenAI audio API
type Whisper struct {
	client *openai.Client
	model  string
}

// NewWhisper builds a client; it does not contact the API
func NewWhisper(cfg WhisperConfig) (*Whisper, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("transcribe: whisper needs an api key")
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}
	return &Whisper{client: openai.NewClientWithConfig(oc), model: model}, nil
}

// Transcribe satisfies domain.Transcriber
func (w *Whisper) Transcribe(ctx context.Context, payload string, opt domain.Options) (domain.Result, error) {
	lang, err := baseLanguage(opt.Language)
	if err != nil {
		return domain.Result{}, err
	}
	media, ext, err := decodePayload(payload)
	if err != nil {
		return domain.Result{}, err
	}

	format := openai.AudioResponseFormatJSON
	if opt.WithTimestamps {
		format = openai.AudioResponseFormatVerboseJSON
	}
	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: "upload." + ext,
		Reader:   bytes.NewReader(media),
		Language: lang,
		Format:   format,
	})
	if err != nil {
		return domain.Result{}, fmt.Errorf("transcribe: whisper: %w", err)
	}

	r := domain.Result{Text: resp.Text, Language: lang, Duration: resp.Duration}
	if resp.Language != "" {
		if l, err := baseLanguage(resp.Language); err == nil {
			r.Language = l
		}
	}
	if opt.WithTimestamps {
		r.Segments = make([]risk.Segment, 0, len(resp.Segments))
		for _, s := range resp.Segments {
			r.Segments = append(r.Segments, risk.Segment{
				ID:    s.ID,
				Start: s.Start,
				End:   s.End,
				Text:  strings.TrimSpace(s.Text),
			})
		}
	}
	return r, nil
}
