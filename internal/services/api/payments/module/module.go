// Package module wires payments into the API using modkit
package module

import (
	"net/http"

	modkit "slugspot/internal/modkit"
	"slugspot/internal/modkit/httpkit"
	"slugspot/internal/platform/net/middleware"
	str "slugspot/internal/platform/strings"

	bookdom "slugspot/internal/services/api/bookings/domain"
	payhttp "slugspot/internal/services/api/payments/http"
	paysvc "slugspot/internal/services/api/payments/service"
)

// Ports declares the injected dependencies for this module
type Ports struct {
	// Auth guards the charge route
	Auth middleware.AuthPort

	// Bookings resolves and settles pending bookings
	Bookings bookdom.PaymentHook
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc paysvc.Service
}

// New constructs a payments module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("payments"), modkit.WithPrefix("/payments")}, opts...)...)

	var in Ports
	if p, ok := b.Ports.(Ports); ok {
		in = p
	}

	svc := paysvc.New(in.Bookings, paysvc.NewSimGateway())

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		payhttp.Register(r, m.svc, in.Auth)
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
