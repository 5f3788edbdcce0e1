package domain

import (
	"context"

	"mathgate/internal/core/mathexpr"
)

// ServicePort defines the service contract for sessions
type ServicePort interface {
	Create(ctx context.Context) (Session, error)
	Get(ctx context.Context, id string) (Session, error)
	SetAngleMode(ctx context.Context, id string, in SetAngleModeInput) (Session, error)

	// AngleModeFor resolves the mode for a session id, radians when empty.
	// Consumed by the solve module through the registry
	AngleModeFor(ctx context.Context, id string) (mathexpr.AngleMode, error)
}
