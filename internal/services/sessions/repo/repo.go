// Package repo provides postgres access for sessions
package repo

import (
	"context"

	"mathgate/internal/modkit/repokit"
	perr "mathgate/internal/platform/errors"
)

// Repo defines the repository contract for sessions
type Repo interface {
	Insert(ctx context.Context, id, mode string) (RowSession, error)
	Get(ctx context.Context, id string) (RowSession, error)
	SetAngleMode(ctx context.Context, id, mode string) (RowSession, error)
}

// RowSession represents a session row from the database
type RowSession struct {
	ID        string
	AngleMode string
	CreatedAt string
	UpdatedAt string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, id, mode string) (RowSession, error) {
	const sql = `
insert into sessions (id, angle_mode)
values ($1, $2)
returning id::text, angle_mode, created_at::text, updated_at::text
`
	var row RowSession
	if err := r.q.QueryRow(ctx, sql, id, mode).Scan(
		&row.ID,
		&row.AngleMode,
		&row.CreatedAt,
		&row.UpdatedAt,
	); err != nil {
		return RowSession{}, perr.FromPostgresf(err, "insert session %s", id)
	}
	return row, nil
}

func (r *queries) Get(ctx context.Context, id string) (RowSession, error) {
	const sql = `
select id::text, angle_mode, created_at::text, updated_at::text
from sessions
where id = $1
`
	var row RowSession
	if err := r.q.QueryRow(ctx, sql, id).Scan(
		&row.ID,
		&row.AngleMode,
		&row.CreatedAt,
		&row.UpdatedAt,
	); err != nil {
		return RowSession{}, perr.FromPostgresf(err, "get session %s", id)
	}
	return row, nil
}

func (r *queries) SetAngleMode(ctx context.Context, id, mode string) (RowSession, error) {
	const sql = `
update sessions
set angle_mode = $2, updated_at = now()
where id = $1
returning id::text, angle_mode, created_at::text, updated_at::text
`
	var row RowSession
	if err := r.q.QueryRow(ctx, sql, id, mode).Scan(
		&row.ID,
		&row.AngleMode,
		&row.CreatedAt,
		&row.UpdatedAt,
	); err != nil {
		return RowSession{}, perr.FromPostgresf(err, "set angle mode for session %s", id)
	}
	return row, nil
}
