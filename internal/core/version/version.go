// Package version reports the build stamp of the running binary
package version

import "runtime"

// BuildInfo is the build stamp served by /meta/version
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"goVersion"`
}

// set with -ldflags "-X postguard/internal/core/version.version=v0.3.0 ..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build stamp
func Info() BuildInfo {
	return BuildInfo{
		Service:   "postguard",
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}
}
