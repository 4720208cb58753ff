// Package api provides the HTTP API for the application
package api

import (
	"rosterpulse/internal/platform/config"
	"rosterpulse/internal/platform/logger"
	phttp "rosterpulse/internal/platform/net/http"
	"rosterpulse/internal/platform/store"

	"rosterpulse/internal/modkit"
	"rosterpulse/internal/modkit/httpkit"
	"rosterpulse/internal/modkit/module"
	"rosterpulse/internal/modkit/swaggerkit"

	analyticsmod "rosterpulse/internal/services/analytics/module"
	metamod "rosterpulse/internal/services/api/meta/module"
	collectormod "rosterpulse/internal/services/collector/module"
	rostermod "rosterpulse/internal/services/roster/module"

	collectordomain "rosterpulse/internal/services/collector/domain"
	rosterdomain "rosterpulse/internal/services/roster/domain"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:   opt.Config,
		PG:    opt.Store.PG,
		Local: opt.Store.Local,
	}

	// Construct the roster module first and extract its Directory port
	roster := rostermod.New(deps)
	dir := module.MustPortsOf[rosterdomain.DirectoryPort](roster)

	// The collector owns the snapshot trigger; analytics serves the exports
	// and the manual trigger endpoint
	collector := collectormod.New(deps, collectormod.In{Directory: dir})
	trig := module.MustPortsOf[collectordomain.TriggerPort](collector)

	analytics := analyticsmod.New(deps, modkit.WithPorts(analyticsmod.In{
		Directory: dir,
		Trigger:   trig,
	}))

	mods := []module.Module{
		metamod.New(deps),
		roster,
		analytics,
		collector,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
