// Package http provides http transport for solving
package http

import (
	stdhttp "net/http"

	"mathgate/internal/modkit/httpkit"
	"mathgate/internal/services/solve/domain"
	svc "mathgate/internal/services/solve/service"
)

// Register mounts solve endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.SolveInput](r, "/", h.solve)
	httpkit.Get(r, "/latest", h.latest)
	httpkit.PostJSON[domain.HistoryInput](r, "/history", h.history)
	httpkit.PostJSON[domain.HistoryInput](r, "/history/export", h.export)
}

// RegisterOcr mounts the recognition endpoint; kept separate so the module
// can expose it at the API root rather than under /solve
func RegisterOcr(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.OcrInput](r, "/", h.recognize)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /solve Solve solveSubmit
// @Summary Normalize raw math input and solve it
// @Tags Solve
// @Accept json
// @Produce json
// @Param payload body domain.SolveInput true "Raw input"
// @Success 200 {object} domain.SolveResult "ok"
// @Router /solve [post]
func (h *handlers) solve(r *stdhttp.Request, in domain.SolveInput) (any, error) {
	return h.svc.Solve(r.Context(), in)
}

// swagger:route GET /solve/latest Solve solveLatest
// @Summary Latest solve outcome for a session
// @Tags Solve
// @Produce json
// @Param session_id query string false "Session id"
// @Success 200 {object} domain.SolveResult "ok"
// @Router /solve/latest [get]
func (h *handlers) latest(r *stdhttp.Request) (any, error) {
	return h.svc.Latest(r.Context(), r.URL.Query().Get("session_id"))
}

// swagger:route POST /solve/history Solve solveHistory
// @Summary Recorded solve attempts
// @Tags Solve
// @Accept json
// @Produce json
// @Param payload body domain.HistoryInput true "Filters"
// @Success 200 {array} domain.HistoryEntry "ok"
// @Router /solve/history [post]
func (h *handlers) history(r *stdhttp.Request, in domain.HistoryInput) (any, error) {
	return h.svc.History(r.Context(), in)
}

// swagger:route POST /solve/history/export Solve solveHistoryExport
// @Summary Export recorded attempts as an XLSX workbook
// @Tags Solve
// @Accept json
// @Produce json
// @Param payload body domain.HistoryInput true "Filters"
// @Success 200 {object} domain.ExportResult "ok"
// @Router /solve/history/export [post]
func (h *handlers) export(r *stdhttp.Request, in domain.HistoryInput) (any, error) {
	return h.svc.Export(r.Context(), in)
}

// swagger:route POST /ocr Solve ocrRecognize
// @Summary Recognize math text from an image
// @Tags Solve
// @Accept json
// @Produce json
// @Param payload body domain.OcrInput true "Image"
// @Success 200 {object} domain.OcrResult "ok"
// @Router /ocr [post]
func (h *handlers) recognize(r *stdhttp.Request, in domain.OcrInput) (any, error) {
	return h.svc.Recognize(r.Context(), in)
}
