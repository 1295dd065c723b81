// Package api provides the HTTP API for the application
package api

import (
	"slugspot/internal/platform/config"
	"slugspot/internal/platform/logger"
	phttp "slugspot/internal/platform/net/http"
	"slugspot/internal/platform/store"

	"slugspot/internal/modkit"
	"slugspot/internal/modkit/httpkit"
	"slugspot/internal/modkit/module"
	"slugspot/internal/modkit/swaggerkit"

	authmod "slugspot/internal/services/api/auth/module"
	bookdom "slugspot/internal/services/api/bookings/domain"
	bookmod "slugspot/internal/services/api/bookings/module"
	listmod "slugspot/internal/services/api/listings/module"
	metamod "slugspot/internal/services/api/meta/module"
	paymod "slugspot/internal/services/api/payments/module"
	revdom "slugspot/internal/services/api/reviews/domain"
	revmod "slugspot/internal/services/api/reviews/module"
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

	// Auth comes first; every guarded module needs its token verifier
	auth := authmod.New(deps)
	authPorts := module.MustPortsOf[authmod.Ports](auth)
	guard := httpkit.NewPortFunc(authPorts.Tokens.Verify)

	// Reviews next so listings can join review lists into detail views
	reviews := revmod.New(deps, modkit.WithPorts(revmod.Ports{Auth: guard}))
	revPort := module.MustPortsOf[revdom.ServicePort](reviews)

	listings := listmod.New(deps, modkit.WithPorts(listmod.Ports{
		Auth:    guard,
		Reviews: revPort,
	}))

	// Bookings expose the payment hooks the checkout settles through
	bookings := bookmod.New(deps, modkit.WithPorts(bookmod.Ports{Auth: guard}))
	bookHook := module.MustPortsOf[bookdom.PaymentHook](bookings)

	payments := paymod.New(deps, modkit.WithPorts(paymod.Ports{
		Auth:     guard,
		Bookings: bookHook,
	}))

	mods := []module.Module{
		metamod.New(deps),
		auth,
		listings,
		reviews,
		bookings,
		payments,
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
