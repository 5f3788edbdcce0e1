// Package repo provides postgres access for solve attempts
package repo

import (
	"context"
	"time"

	"mathgate/internal/modkit/repokit"
	perr "mathgate/internal/platform/errors"
)

// Repo defines the repository contract for solve attempts
type Repo interface {
	InsertAttempt(ctx context.Context, row RowAttempt) error
	List(ctx context.Context, sessionID, kind, status string, limit, offset int) ([]RowAttempt, error)
}

// RowAttempt represents one solve attempt row
type RowAttempt struct {
	ID        string
	SessionID string
	Seq       int64
	RawText   string
	Canonical string
	Kind      string
	AngleMode string
	Status    string
	Result    string
	ErrorMsg  string
	Source    string
	CreatedAt time.Time
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

func (r *queries) InsertAttempt(ctx context.Context, row RowAttempt) error {
	const sql = `
insert into solve_attempts
(id, session_id, seq, raw_text, canonical, kind, angle_mode, status, result, error_msg, source)
values ($1, nullif($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11)
`
	_, err := r.q.Exec(ctx, sql,
		row.ID,
		row.SessionID,
		row.Seq,
		row.RawText,
		row.Canonical,
		row.Kind,
		row.AngleMode,
		row.Status,
		row.Result,
		row.ErrorMsg,
		row.Source,
	)
	return perr.FromPostgresf(err, "insert solve attempt %s", row.ID)
}

func (r *queries) List(ctx context.Context, sessionID, kind, status string, limit, offset int) ([]RowAttempt, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const sql = `
select id::text, coalesce(session_id::text, ''), seq, raw_text, canonical, kind, angle_mode,
status, result, error_msg, source, created_at
from solve_attempts
where ($1 = '' or session_id::text = $1)
and ($2 = '' or kind = $2)
and ($3 = '' or status = $3)
order by created_at desc, seq desc
limit $4 offset $5
`
	rows, err := r.q.Query(ctx, sql, sessionID, kind, status, limit, offset)
	if err != nil {
		return nil, perr.FromPostgres(err, "list solve attempts")
	}
	defer rows.Close()
	var out []RowAttempt
	for rows.Next() {
		var rr RowAttempt
		if err := rows.Scan(
			&rr.ID,
			&rr.SessionID,
			&rr.Seq,
			&rr.RawText,
			&rr.Canonical,
			&rr.Kind,
			&rr.AngleMode,
			&rr.Status,
			&rr.Result,
			&rr.ErrorMsg,
			&rr.Source,
			&rr.CreatedAt,
		); err != nil {
			return nil, perr.FromPostgres(err, "scan solve attempt")
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
