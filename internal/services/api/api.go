// Package api provides the HTTP API for the application
package api

import (
	"mathgate/internal/platform/config"
	"mathgate/internal/platform/logger"
	phttp "mathgate/internal/platform/net/http"
	"mathgate/internal/platform/store"

	"mathgate/internal/modkit"
	"mathgate/internal/modkit/httpkit"
	"mathgate/internal/modkit/module"
	"mathgate/internal/modkit/swaggerkit"

	metamod "mathgate/internal/services/api/meta/module"
	assetsmod "mathgate/internal/services/assets/module"
	sessionsmod "mathgate/internal/services/sessions/module"
	solvemod "mathgate/internal/services/solve/module"
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
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// Sessions first: the solve module needs its AngleMode port
	sessions := sessionsmod.New(deps)
	sessPort := module.MustPortsOf[sessionsmod.Ports](sessions).Sessions

	solve := solvemod.New(
		deps,
		modkit.WithPorts(solvemod.Ports{
			Sessions: sessPort,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		sessions,
		solve,
		assetsmod.New(deps),
	}

	// session scoping rides on the common stack for every v1 route
	stack := append(httpkit.CommonStack(), httpkit.Session(httpkit.NewPortFunc(nil)))

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}

		// recognition lives at the API root, not under /solve
		if oc, ok := solve.(interface{ MountOcr(httpkit.Router) }); ok {
			oc.MountOcr(api)
		}
	})
}
