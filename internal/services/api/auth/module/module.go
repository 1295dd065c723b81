// Package module wires auth into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "slugspot/internal/modkit"
	"slugspot/internal/modkit/httpkit"
	"slugspot/internal/platform/config"
	str "slugspot/internal/platform/strings"

	authhttp "slugspot/internal/services/api/auth/http"
	authrepo "slugspot/internal/services/api/auth/repo"
	authsvc "slugspot/internal/services/api/auth/service"
	"slugspot/internal/services/api/auth/domain"
)

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

	svc    authsvc.Service
	tokens domain.TokenPort
}

// FromConfig resolves auth policy from env config (AUTH_* keys)
func FromConfig(cfg config.Conf) authsvc.Options {
	opts := authsvc.Options{
		AllowedEmailDomain: cfg.MayString("AUTH_EMAIL_DOMAIN", "ucsc.edu"),
	}
	if id := cfg.MayString("AUTH_GOOGLE_CLIENT_ID", ""); id != "" {
		opts.Google = authsvc.NewGoogleOAuth(
			id,
			cfg.MustString("AUTH_GOOGLE_CLIENT_SECRET"),
			cfg.MustString("AUTH_GOOGLE_REDIRECT_URL"),
			opts.AllowedEmailDomain,
		)
	}
	return opts
}

// New constructs an auth module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("auth"), modkit.WithPrefix("/auth")}, opts...)...)

	tokens := authsvc.NewTokens(
		deps.Cfg.MustString("AUTH_JWT_SECRET"),
		time.Duration(deps.Cfg.MayInt("AUTH_TOKEN_TTL_MIN", 24*60))*time.Minute,
	)
	repo := authrepo.NewPG()
	svc := authsvc.New(deps.PG, repo, tokens, FromConfig(deps.Cfg))

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
		tokens:    tokens,
	}
	m.ports = Ports{Tokens: tokens, Sessions: adaptAuthPort{svc: svc}}

	external := b.Register
	m.register = func(r httpkit.Router) {
		authhttp.Register(r, m.svc, httpkit.NewPortFunc(tokens.Verify))
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
