// Package service contains session lifecycle workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"mathgate/internal/core/mathexpr"
	"mathgate/internal/modkit/repokit"
	perr "mathgate/internal/platform/errors"
	"mathgate/internal/services/sessions/domain"
	"mathgate/internal/services/sessions/repo"
)

// Service defines the service contract for sessions
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new sessions service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("sessions.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("sessions.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Create mints a session with the default angle mode
func (s *Svc) Create(ctx context.Context) (domain.Session, error) {
	row, err := s.Repo.Insert(ctx, uuid.NewString(), mathexpr.AngleRadians.String())
	if err != nil {
		return domain.Session{}, err
	}
	return toSession(row), nil
}

// Get retrieves a session by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Session{}, perr.Validationf("invalid session id")
	}
	row, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	return toSession(row), nil
}

// SetAngleMode toggles degree interpretation for subsequent solves
func (s *Svc) SetAngleMode(ctx context.Context, id string, in domain.SetAngleModeInput) (domain.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Session{}, perr.Validationf("invalid session id")
	}
	mode, err := mathexpr.ParseAngleMode(in.Mode)
	if err != nil {
		return domain.Session{}, perr.Validationf("invalid angle mode %q", in.Mode)
	}
	row, err := s.Repo.SetAngleMode(ctx, id, mode.String())
	if err != nil {
		return domain.Session{}, err
	}
	return toSession(row), nil
}

// AngleModeFor resolves the angle mode for a session id, radians when the id
// is empty. Consumed by the solve service
func (s *Svc) AngleModeFor(ctx context.Context, id string) (mathexpr.AngleMode, error) {
	if id == "" {
		return mathexpr.AngleRadians, nil
	}
	sess, err := s.Get(ctx, id)
	if err != nil {
		return mathexpr.AngleRadians, err
	}
	return mathexpr.ParseAngleMode(sess.AngleMode)
}

func toSession(r repo.RowSession) domain.Session {
	return domain.Session{
		ID:        r.ID,
		AngleMode: r.AngleMode,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
