// Package http serves the meta surface: health, readiness, version and rulepack info
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"mathgate/internal/core/rulepack"
	"mathgate/internal/core/version"
	"mathgate/internal/modkit/httpkit"
)

// Pinger matches store adapters that can answer a liveness ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps carries what the meta handlers need; PG stays any so tests can pass stubs
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
}

type handlers struct {
	deps        Deps
	rulepackVer int
}

// Register mounts the meta routes under the caller's prefix
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, rulepackVer: rulepack.MustLoad().Version}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/rulepack", h.rulepack)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the liveness payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"mathgate-api"`
	Started string `json:"started"  example:"2026-08-30T13:00:00Z"`
	Now     string `json:"now"      example:"2026-08-30T13:05:00Z"`
}

// ReadyCheck reports one dependency probe
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse aggregates the dependency probes
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-08-30T13:05:00Z"`
}

// ServiceResponse carries the service name and uptime
type ServiceResponse struct {
	Name    string `json:"name"    example:"mathgate-api"`
	Started string `json:"started" example:"2026-08-30T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// RulepackResponse reports the embedded rule table version and build info
type RulepackResponse struct {
	RulepackVersion int               `json:"rulepack_version" example:"1"`
	Build           version.BuildInfo `json:"build"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse "alive"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 2*time.Second)
	defer cancel()

	probes := []struct {
		name string
		dep  any
	}{
		{"pg", h.deps.PG},
	}

	overall := "ok"
	checks := make([]ReadyCheck, 0, len(probes))
	for _, pr := range probes {
		c := probe(ctx, pr.name, pr.dep)
		checks = append(checks, c)
		switch c.Status {
		case "ok":
		case "fail":
			overall = "fail"
		default:
			if overall == "ok" {
				overall = "degraded"
			}
		}
	}

	return ReadyResponse{
		Status: overall,
		Checks: checks,
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// probe pings one dependency; a nil dep is skipped, a non-Pinger is unknown
func probe(ctx stdctx.Context, name string, dep any) ReadyCheck {
	if dep == nil {
		return ReadyCheck{Name: name, Status: "skipped"}
	}
	p, ok := dep.(Pinger)
	if !ok {
		return ReadyCheck{Name: name, Status: "unknown"}
	}
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: name, Status: "ok"}
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/rulepack Meta metaRulepack
// @Summary Embedded rule table version and build
// @Tags Meta
// @Produce json
// @Success 200 type RulepackResponse ok
// @Router /meta/rulepack [get]
func (h *handlers) rulepack(_ *http.Request) (any, error) {
	return RulepackResponse{
		RulepackVersion: h.rulepackVer,
		Build:           version.Info(),
	}, nil
}
