package store

import (
	"time"

	"postguard/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
}

// ConfigFrom reads SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_* from cfg
// URLs are required only for the backends that are enabled
func ConfigFrom(cfg config.Conf, appName string) Config {
	pgc := cfg.Prefix("SERVICE_PGSQL_")
	chc := cfg.Prefix("SERVICE_CLICKHOUSE_")

	out := Config{AppName: appName}
	out.PG.Enabled = pgc.MayBool("ENABLED", false)
	if out.PG.Enabled {
		out.PG.URL = pgc.MustString("DBURL")
	}
	out.PG.MaxConns = int32(pgc.MayInt("MAX_CONNS", 8))
	out.PG.SlowQueryMs = pgc.MayInt("SLOW_MS", 250)
	out.PG.LogSQL = pgc.MayBool("LOG_SQL", false)
	out.PG.ConnectRetries = pgc.MayInt("CONNECT_RETRIES", 20)
	out.PG.PingTimeout = pgc.MayDuration("PING_TIMEOUT", 3*time.Second)

	out.CH.Enabled = chc.MayBool("ENABLED", false)
	if out.CH.Enabled {
		out.CH.URL = chc.MustString("DBURL")
	}
	return out
}
