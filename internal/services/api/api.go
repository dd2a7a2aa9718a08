// Package api provides the HTTP API for the application
package api

import (
	"time"

	"postguard/internal/platform/config"
	"postguard/internal/platform/logger"
	"postguard/internal/platform/metrics"
	phttp "postguard/internal/platform/net/http"
	"postguard/internal/platform/store"

	"postguard/internal/modkit"
	"postguard/internal/modkit/httpkit"
	"postguard/internal/modkit/module"
	"postguard/internal/modkit/swaggerkit"

	checkmod "postguard/internal/services/api/check/module"
	metamod "postguard/internal/services/api/meta/module"
	statsmod "postguard/internal/services/api/stats/module"
	assessmod "postguard/internal/services/assess/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Metrics        *metrics.Registry
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount builds every module and mounts the API onto the given router
func Mount(r phttp.Router, opt Options) error {
	log := logger.Get()
	if opt.Logger != nil {
		log = opt.Logger
	}
	var reg *metrics.Registry
	deps := modkit.FromStore(*log, opt.Config, opt.Store, nil)
	if opt.Metrics != nil {
		reg = opt.Metrics
		deps.Metrics = reg.Registerer()
	}

	p, err := NewPipeline(deps, assessmod.Options{})
	if err != nil {
		return err
	}

	mods := append(p.Modules(),
		checkmod.New(deps, modkit.WithPorts(p.CheckPorts())),
		statsmod.New(deps, modkit.WithPorts(statsmod.Ports{Summary: p.Summary()})),
		metamod.New(deps, modkit.WithPorts(metamod.Ports{
			Rulepack:  p.Assess.Pack(),
			Providers: p.Providers(),
		})),
	)

	ac := opt.Config.Prefix("POSTGUARD_API_")
	stack := httpkit.StackOptions{
		CORSOrigins: ac.MayCSV("CORS_ORIGINS", []string{"*"}),
		Timeout:     ac.MayDuration("REQUEST_TIMEOUT", 60*time.Second),
		SlowLog:     ac.MayDuration("SLOW_LOG", 2*time.Second),
	}
	if reg != nil {
		stack.Metrics = metrics.NewHTTP(reg.Registerer())
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(stack), func(api httpkit.Router) {
		for _, m := range mods {
			// ports are registered under the module name for cross-module lookups
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
	return nil
}
