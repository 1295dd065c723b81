// Package module wires listings into the API using modkit
package module

import (
	"net/http"

	modkit "slugspot/internal/modkit"
	"slugspot/internal/modkit/httpkit"
	"slugspot/internal/platform/net/middleware"
	str "slugspot/internal/platform/strings"

	lsthttp "slugspot/internal/services/api/listings/http"
	lstrepo "slugspot/internal/services/api/listings/repo"
	lstsvc "slugspot/internal/services/api/listings/service"
	revdom "slugspot/internal/services/api/reviews/domain"
)

// Ports declares the injected dependencies for this module
type Ports struct {
	// Auth guards the create route
	Auth middleware.AuthPort

	// Reviews supplies the review lists joined into listing detail
	Reviews revdom.ServicePort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc lstsvc.Service
}

// New constructs a listings module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("listings"), modkit.WithPrefix("/listings")}, opts...)...)

	var in Ports
	if p, ok := b.Ports.(Ports); ok {
		in = p
	}

	repo := lstrepo.NewPG()
	svc := lstsvc.New(deps.PG, repo, in.Reviews)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptListingsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		lsthttp.Register(r, m.svc, in.Auth)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
