package ch

import (
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo describes this process so queries can be traced back to a binary and commit
func BuildClientInfo(app string) clickhouse.ClientInfo {
	host, _ := os.Hostname()
	if app == "" {
		app = "postguard"
	}
	type product = struct{ Name, Version string }
	return clickhouse.ClientInfo{Products: []product{
		{Name: strings.TrimSpace(app), Version: vcsShortSHA()},
		{Name: "go", Version: runtime.Version()},
		{Name: "host", Version: strings.TrimSpace(host)},
	}}
}

func vcsShortSHA() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return s.Value[:7]
			}
		}
	}
	return "unknown"
}
