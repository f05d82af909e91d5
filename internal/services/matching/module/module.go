// Package module wires matching sessions into the API using modkit
package module

import (
	"net/http"

	modkit "pairmatch/internal/modkit"
	"pairmatch/internal/modkit/httpkit"
	str "pairmatch/internal/platform/strings"
	matchinghttp "pairmatch/internal/services/matching/http"
	matchingrepo "pairmatch/internal/services/matching/repo"
	matchingsvc "pairmatch/internal/services/matching/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc matchingsvc.Service
}

// Ports exposes the matching service to other modules
type Ports struct {
	Service matchingsvc.Service
}

// New constructs a matching module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("matching"),
		modkit.WithPrefix("/sessions"),
	}, opts...)...)

	repo := matchingrepo.NewPG()
	svc := matchingsvc.New(deps.PG, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		matchinghttp.Register(r, m.svc)
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

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
