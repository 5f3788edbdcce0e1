package domain

import (
	"context"

	"mathgate/internal/core/mathexpr"
)

// ServicePort defines the service contract for solving
type ServicePort interface {
	Solve(ctx context.Context, in SolveInput) (SolveResult, error)
	Latest(ctx context.Context, sessionID string) (SolveResult, error)
	Recognize(ctx context.Context, in OcrInput) (OcrResult, error)
	History(ctx context.Context, in HistoryInput) ([]HistoryEntry, error)
	Export(ctx context.Context, in HistoryInput) (ExportResult, error)
}

// AngleModeResolver is the slice of the sessions service the solver needs
type AngleModeResolver interface {
	AngleModeFor(ctx context.Context, id string) (mathexpr.AngleMode, error)
}
