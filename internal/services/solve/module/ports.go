package module

import (
	"context"

	solvedom "mathgate/internal/services/solve/domain"
	solvesvc "mathgate/internal/services/solve/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptSolvePort exposes service methods as module ports for cross-module usage
type adaptSolvePort struct{ svc solvesvc.Service }

func (a adaptSolvePort) Solve(ctx context.Context, in solvedom.SolveInput) (solvedom.SolveResult, error) {
	return a.svc.Solve(ctx, in)
}

func (a adaptSolvePort) Latest(ctx context.Context, sessionID string) (solvedom.SolveResult, error) {
	return a.svc.Latest(ctx, sessionID)
}
