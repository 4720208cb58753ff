// Package module wires the analytics exports into the API using modkit
package module

import (
	"net/http"

	modkit "rosterpulse/internal/modkit"
	"rosterpulse/internal/modkit/httpkit"
	str "rosterpulse/internal/platform/strings"
	"rosterpulse/internal/services/analytics/domain"
	analyticshttp "rosterpulse/internal/services/analytics/http"
	analyticsrepo "rosterpulse/internal/services/analytics/repo"
	analyticssvc "rosterpulse/internal/services/analytics/service"
	collectordomain "rosterpulse/internal/services/collector/domain"
	rosterdomain "rosterpulse/internal/services/roster/domain"
)

// In is the port bundle this module consumes, injected via WithPorts
type In struct {
	Directory rosterdomain.DirectoryPort
	Trigger   collectordomain.TriggerPort
}

// Ports exposed by the analytics module
type Ports struct {
	Service domain.ServicePort
}

// Module implements the analytics module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc analyticssvc.Service
}

// New constructs the analytics module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("analytics"), modkit.WithPrefix("/analytics")}, opts...)...)

	in, ok := b.Ports.(In)
	if !ok || in.Directory == nil || in.Trigger == nil {
		panic("analytics module requires roster and collector ports via WithPorts")
	}

	var r analyticsrepo.Repo
	switch {
	case deps.PG != nil:
		r = analyticsrepo.NewPG().Bind(deps.PG)
	case deps.Local != nil:
		r = analyticsrepo.NewLocal(deps.Local)
	default:
		panic("analytics module requires a storage backend")
	}
	svc := analyticssvc.New(r, in.Directory, analyticssvc.Config{
		NoDateFloor:     deps.Cfg.MayBool("ANALYTICS_NO_DATE_FLOOR", false),
		EventWindowDays: deps.Cfg.MayInt("ANALYTICS_EVENT_WINDOW_DAYS", 30),
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		analyticshttp.Register(r, m.svc, in.Trigger)
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

// Ports returns the analytics port set
func (m *Module) Ports() any { return m.ports }
