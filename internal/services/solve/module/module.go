// Package module wires solving into the API using modkit
package module

import (
	"net/http"

	"mathgate/internal/adapters/ocr"
	"mathgate/internal/adapters/solver"
	"mathgate/internal/core/rulepack"
	modkit "mathgate/internal/modkit"
	"mathgate/internal/modkit/httpkit"
	str "mathgate/internal/platform/strings"
	solvehttp "mathgate/internal/services/solve/http"
	solverepo "mathgate/internal/services/solve/repo"
	solvesvc "mathgate/internal/services/solve/service"

	sessionsdom "mathgate/internal/services/sessions/domain"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc solvesvc.Service
}

// Ports declares the required injected session port for this module
type Ports struct {
	Sessions sessionsdom.ServicePort
}

// New constructs a solve module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("solve"), modkit.WithPrefix("/solve")}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Sessions == nil {
		panic("solve module requires the Sessions port (from services/sessions)")
	}

	sv := solver.New(solver.Options{
		BaseURL:   cfg.SolverBaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.SolverTimeout,
	})

	var rec ocr.Recognizer
	if cfg.OcrBaseURL != "" {
		rec = ocr.New(ocr.Options{
			BaseURL:   cfg.OcrBaseURL,
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.OcrTimeout,
		})
	}

	svc := solvesvc.New(deps.PG, solverepo.NewPG(), rulepack.MustLoad(), sv, rec, injected.Sessions)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptSolvePort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		solvehttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountOcr mounts the recognition endpoint outside the module prefix
func (m *Module) MountOcr(r httpkit.Router) {
	r.Route("/ocr", func(rr httpkit.Router) {
		solvehttp.RegisterOcr(rr, m.svc)
	})
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

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
