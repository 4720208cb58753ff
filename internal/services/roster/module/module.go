// Package module wires the roster into the API using modkit
package module

import (
	"net/http"

	modkit "rosterpulse/internal/modkit"
	"rosterpulse/internal/modkit/httpkit"
	str "rosterpulse/internal/platform/strings"
	"rosterpulse/internal/services/roster/domain"
	rosterhttp "rosterpulse/internal/services/roster/http"
	rosterrepo "rosterpulse/internal/services/roster/repo"
	rostersvc "rosterpulse/internal/services/roster/service"
)

// Ports exposed by the roster module
type Ports struct {
	Directory domain.DirectoryPort
}

// Module implements the roster module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc rostersvc.Service
}

// New constructs the roster module
// binds the repo to whichever backend the deps carry; pg wins when both exist
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("roster"), modkit.WithPrefix("/roster")}, opts...)...)

	var r rosterrepo.Repo
	switch {
	case deps.PG != nil:
		r = rosterrepo.NewPG().Bind(deps.PG)
	case deps.Local != nil:
		r = rosterrepo.NewLocal(deps.Local)
	default:
		panic("roster module requires a storage backend")
	}
	svc := rostersvc.New(r)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Directory: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		rosterhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
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

// Ports returns the roster port set
func (m *Module) Ports() any { return m.ports }
