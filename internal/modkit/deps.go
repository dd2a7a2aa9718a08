package modkit

import (
	"postguard/internal/modkit/repokit"
	"postguard/internal/platform/config"
	"postguard/internal/platform/logger"
	"postguard/internal/platform/store"

	"github.com/prometheus/client_golang/prometheus"
)

// Deps holds core dependencies passed to modules
// PG, CH and Metrics are optional and nil when the backend is disabled
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	PG      repokit.TxRunner
	CH      store.Clickhouse
	Metrics prometheus.Registerer
}

// FromStore copies the enabled backends of s into a Deps
func FromStore(log logger.Logger, cfg config.Conf, s *store.Store, reg prometheus.Registerer) Deps {
	d := Deps{Log: log, Cfg: cfg, Metrics: reg}
	if s != nil {
		d.PG = s.PG
		d.CH = s.CH
	}
	return d
}
