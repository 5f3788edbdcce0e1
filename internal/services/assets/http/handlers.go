// Package http provides http transport for the asset surface
package http

import (
	stdhttp "net/http"

	"mathgate/internal/modkit/httpkit"
	svc "mathgate/internal/services/assets/service"
)

// Register mounts asset endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/manifest", h.manifest)

	fileServer := stdhttp.StripPrefix(
		svc.StaticPrefix,
		stdhttp.FileServer(stdhttp.FS(s.Static())),
	)
	r.Handle("/static/*", fileServer)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /assets/manifest Assets assetsManifest
// @Summary Offline cache manifest: versioned cache name and pre-fetch paths
// @Tags Assets
// @Produce json
// @Success 200 {object} domain.Manifest "ok"
// @Router /assets/manifest [get]
func (h *handlers) manifest(_ *stdhttp.Request) (any, error) {
	return h.svc.Manifest(), nil
}
