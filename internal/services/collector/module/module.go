// Package module wires the collector service and exposes its ports
package module

import (
	modkit "rosterpulse/internal/modkit"
	"rosterpulse/internal/modkit/httpkit"
	anrepo "rosterpulse/internal/services/analytics/repo"
	"rosterpulse/internal/services/collector/domain"
	"rosterpulse/internal/services/collector/service"
	rosterdomain "rosterpulse/internal/services/roster/domain"
)

// In is the port bundle this module consumes
type In struct {
	Directory rosterdomain.DirectoryPort
}

// Ports exposed by the collector module
type Ports struct {
	Trigger domain.TriggerPort
}

// Module defines the collector module, it owns no HTTP routes
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the collector module with its ports
func New(deps modkit.Deps, in In) *Module {
	if in.Directory == nil {
		panic("collector module requires a roster directory port")
	}

	var r anrepo.Repo
	switch {
	case deps.PG != nil:
		r = anrepo.NewPG().Bind(deps.PG)
	case deps.Local != nil:
		r = anrepo.NewLocal(deps.Local)
	default:
		panic("collector module requires a storage backend")
	}

	m := &Module{deps: deps}
	m.ports = Ports{Trigger: service.New(r, in.Directory)}
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "collector" }

// Prefix returns the module config prefix (none for a worker-only service)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
