// Package module holds the contract every mounted module satisfies
package module

import (
	phttp "mathgate/internal/platform/net/http"
)

// Module is what the registry mounts and wires
// lives apart from modkit so modules exporting their own ports types avoid an import cycle
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
