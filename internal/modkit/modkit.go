package modkit

import (
	phttp "mathgate/internal/platform/net/http"
)

// Module is what every API module exposes: routes and a port bundle.
// Kept tiny so modules only couple through ports
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns a module specific port set interface for cross wiring
	Ports() any

	// Name returns the module name
	Name() string
}

// Builder is the conventional constructor shape,
// New(deps Deps, opts ...Option) Module
type Builder func(Deps, ...Option) Module
