// Package http provides http transport for sessions
package http

import (
	stdhttp "net/http"

	"mathgate/internal/modkit/httpkit"
	"mathgate/internal/services/sessions/domain"
	svc "mathgate/internal/services/sessions/service"
)

// Register mounts session endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Post(r, "/", h.create)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.SetAngleModeInput](r, "/{id}/angle-mode", h.setAngleMode)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /sessions Sessions sessionsCreate
// @Summary Create a solving session with the default angle mode
// @Tags Sessions
// @Produce json
// @Success 200 {object} domain.Session "ok"
// @Router /sessions [post]
func (h *handlers) create(r *stdhttp.Request) (any, error) {
	return h.svc.Create(r.Context())
}

// swagger:route GET /sessions/{id} Sessions sessionsGet
// @Summary Fetch a session by id
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.Session "ok"
// @Router /sessions/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "id"))
}

// swagger:route PUT /sessions/{id}/angle-mode Sessions sessionsSetAngleMode
// @Summary Set how bare numeric trig arguments are interpreted
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.SetAngleModeInput true "Mode"
// @Success 200 {object} domain.Session "ok"
// @Router /sessions/{id}/angle-mode [put]
func (h *handlers) setAngleMode(r *stdhttp.Request, in domain.SetAngleModeInput) (any, error) {
	return h.svc.SetAngleMode(r.Context(), httpkit.Param(r, "id"), in)
}
