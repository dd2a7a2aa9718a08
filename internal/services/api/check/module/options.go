package module

import (
	"postguard/internal/platform/config"
)

// Options holds configuration settings for the check module
type Options struct {
	MaxBodyMB int
	RateRPS   float64
	RateBurst int
}

// FromConfig reads POSTGUARD_API_* keys under cfg
func FromConfig(cfg config.Conf) Options {
	ac := cfg.Prefix("POSTGUARD_API_")
	return Options{
		MaxBodyMB: ac.MayInt("MAX_BODY_MB", 32),
		RateRPS:   ac.MayFloat64("RATE_RPS", 0),
		RateBurst: ac.MayInt("RATE_BURST", 0),
	}
}
