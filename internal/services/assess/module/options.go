package module

import "postguard/internal/platform/config"

// Options holds configuration settings for the assess module
type Options struct {
	Latency        string
	Rulepack       string
	SegmentWorkers int
}

// FromConfig reads POSTGUARD_PIPELINE_* keys under cfg
func FromConfig(cfg config.Conf) Options {
	pc := cfg.Prefix("POSTGUARD_PIPELINE_")
	return Options{
		Latency:        pc.MayEnum("LATENCY", "none", "none", "simulated"),
		Rulepack:       pc.MayString("RULEPACK", ""),
		SegmentWorkers: pc.MayInt("SEGMENT_WORKERS", 4),
	}
}
