// Package api provides the HTTP API for the application
package api

import (
	"pairmatch/internal/platform/config"
	"pairmatch/internal/platform/logger"
	phttp "pairmatch/internal/platform/net/http"
	"pairmatch/internal/platform/store"

	"pairmatch/internal/modkit"
	"pairmatch/internal/modkit/httpkit"
	"pairmatch/internal/modkit/module"
	"pairmatch/internal/modkit/swaggerkit"

	metamod "pairmatch/internal/services/api/meta/module"
	matchingmod "pairmatch/internal/services/matching/module"
	recordsmod "pairmatch/internal/services/records/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	mods := []module.Module{
		metamod.New(deps),
		matchingmod.New(deps),
		recordsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
