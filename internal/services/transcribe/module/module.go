// Package module selects the transcription provider from config
package module

import (
	"time"

	"postguard/internal/modkit"
	"postguard/internal/platform/config"
	phttp "postguard/internal/platform/net/http"
	"postguard/internal/services/transcribe/domain"
	"postguard/internal/services/transcribe/service"
)

// Providers accepted by POSTGUARD_TRANSCRIBE_PROVIDER
const (
	ProviderMock    = "mock"
	ProviderWhisper = "whisper"
)

// Options holds configuration settings for the transcribe module
type Options struct {
	Provider string
	Language string
	Whisper  service.WhisperConfig
	// Delay applies to the mock provider only
	Delay time.Duration
}

// FromConfig reads POSTGUARD_TRANSCRIBE_* keys under cfg
func FromConfig(cfg config.Conf) Options {
	tc := cfg.Prefix("POSTGUARD_TRANSCRIBE_")
	return Options{
		Provider: tc.MayEnum("PROVIDER", ProviderMock, ProviderMock, ProviderWhisper),
		Language: tc.MayString("LANGUAGE", "ja"),
		Whisper: service.WhisperConfig{
			APIKey:  tc.MayString("OPENAI_KEY", ""),
			BaseURL: tc.MayString("OPENAI_BASE_URL", ""),
			Model:   tc.MayString("MODEL", "whisper-1"),
		},
	}
}

// Module implements modkit.Module; it mounts no routes
type Module struct {
	ports    domain.Ports
	provider string
	language string
}

// New builds the configured provider; delay is the simulated transcription wait
func New(deps modkit.Deps, delay time.Duration) (*Module, error) {
	opt := FromConfig(deps.Cfg)
	opt.Delay = delay
	return NewWithOptions(deps, opt)
}

// NewWithOptions builds the provider named by opt
func NewWithOptions(deps modkit.Deps, opt Options) (*Module, error) {
	var t domain.Transcriber
	switch opt.Provider {
	case ProviderWhisper:
		w, err := service.NewWhisper(opt.Whisper)
		if err != nil {
			return nil, err
		}
		t = w
	default:
		opt.Provider = ProviderMock
		t = service.Mock{Delay: opt.Delay}
	}
	if opt.Language == "" {
		opt.Language = "ja"
	}
	deps.Log.Info().Str("provider", opt.Provider).Str("language", opt.Language).Msg("transcriber ready")
	return &Module{ports: domain.Ports{Transcriber: t}, provider: opt.Provider, language: opt.Language}, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "transcribe" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(phttp.Router) {}

// Provider reports the active provider name
func (m *Module) Provider() string { return m.provider }

// Options is what check-video sends: the configured language with timestamps
func (m *Module) Options() domain.Options {
	return domain.Options{Language: m.language, WithTimestamps: true}
}
