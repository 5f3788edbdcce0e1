// Package service contains the solve workflow: normalize, dispatch to the
// external solver, record the attempt, and keep the per-session latest result
package service

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"

	"mathgate/internal/adapters/ocr"
	"mathgate/internal/adapters/solver"
	"mathgate/internal/core/mathexpr"
	"mathgate/internal/core/rulepack"
	"mathgate/internal/modkit/repokit"
	perr "mathgate/internal/platform/errors"
	"mathgate/internal/platform/logger"
	"mathgate/internal/services/solve/domain"
	"mathgate/internal/services/solve/repo"
)

// Service defines the service contract for solving
type Service interface{ domain.ServicePort }

// SolverPort is the slice of the solver client the service needs
type SolverPort interface {
	Solve(ctx context.Context, req solver.Request) (solver.Response, error)
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	pipe     *mathexpr.Pipeline
	pack     *rulepack.Pack
	solver   SolverPort
	ocr      ocr.Recognizer
	sessions domain.AngleModeResolver

	latest *latestTable
	log    logger.Logger
}

// New creates a new solve service
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Repo],
	pack *rulepack.Pack,
	sv SolverPort,
	rec ocr.Recognizer,
	sessions domain.AngleModeResolver,
) *Svc {
	if db == nil {
		panic("solve.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("solve.Service requires a non nil Repo binder")
	}
	if pack == nil {
		panic("solve.Service requires a non nil rule pack")
	}
	if sv == nil {
		panic("solve.Service requires a non nil solver")
	}
	return &Svc{
		Repo:     binder.Bind(db),
		binder:   binder,
		db:       db,
		pipe:     mathexpr.NewPipeline(pack),
		pack:     pack,
		solver:   sv,
		ocr:      rec,
		sessions: sessions,
		latest:   newLatestTable(),
		log:      *logger.Named("solve"),
	}
}

// Solve normalizes raw input, dispatches the canonical form to the solver,
// records the attempt, and publishes the result as the session's latest
// unless a newer request already finished
func (s *Svc) Solve(ctx context.Context, in domain.SolveInput) (domain.SolveResult, error) {
	var zero domain.SolveResult

	mode := mathexpr.AngleRadians
	if s.sessions != nil {
		m, err := s.sessions.AngleModeFor(ctx, in.SessionID)
		if err != nil {
			return zero, err
		}
		mode = m
	}

	canonical, warnings := s.pipe.Normalize(in.Text, mode)
	if canonical == "" {
		return zero, perr.EmptyInputf("nothing to solve")
	}

	kind := s.kindFor(in.Mode, in.Text, canonical)
	seq := s.latest.Next(in.SessionID)

	out := domain.SolveResult{
		Seq:       seq,
		Canonical: canonical,
		Kind:      kind,
		AngleMode: mode.String(),
		Warnings:  warnings,
	}

	resp, serr := s.solver.Solve(ctx, solver.Request{
		Text:    canonical,
		Mode:    kind,
		Explain: in.Explain,
	})

	row := repo.RowAttempt{
		ID:        uuid.NewString(),
		SessionID: in.SessionID,
		Seq:       seq,
		RawText:   in.Text,
		Canonical: canonical,
		Kind:      kind,
		AngleMode: mode.String(),
		Source:    in.Source,
	}

	if serr != nil {
		row.Status = domain.StatusFailed
		if perr.IsCode(serr, perr.ErrorCodeSolverRejected) {
			row.Status = domain.StatusRejected
		}
		row.ErrorMsg = perr.WireFrom(serr).Message
		if err := s.Repo.InsertAttempt(ctx, row); err != nil {
			s.log.Warn().Err(err).Msg("record failed attempt")
		}
		return zero, serr
	}

	out.Result = resp.Result
	out.Steps = toSteps(resp.Steps)
	out.NumericValue = resp.NumericValue
	if resp.Pretty != nil {
		out.Pretty = &domain.Pretty{EnText: resp.Pretty.EnText, ArLatex: resp.Pretty.ArLatex}
	}

	row.Status = domain.StatusOK
	row.Result = resp.Result
	if err := s.Repo.InsertAttempt(ctx, row); err != nil {
		s.log.Warn().Err(err).Msg("record attempt")
	}

	if !s.latest.Publish(in.SessionID, out) {
		s.log.Debug().Int64("seq", seq).Str("session", in.SessionID).Msg("stale solve result discarded")
	}
	return out, nil
}

// Latest returns the authoritative latest outcome for a session
func (s *Svc) Latest(_ context.Context, sessionID string) (domain.SolveResult, error) {
	res, ok := s.latest.Get(sessionID)
	if !ok {
		return domain.SolveResult{}, perr.NotFoundf("no solve result for session")
	}
	return res, nil
}

// Recognize extracts raw text from an image; the text is returned untouched
// so the client can place it in the input box before solving
func (s *Svc) Recognize(ctx context.Context, in domain.OcrInput) (domain.OcrResult, error) {
	if s.ocr == nil {
		return domain.OcrResult{}, perr.OCRf("recognition not configured")
	}
	img, err := base64.StdEncoding.DecodeString(in.ImageB64)
	if err != nil {
		return domain.OcrResult{}, perr.Validationf("image_b64 is not valid base64")
	}
	text, err := s.ocr.Recognize(ctx, img, in.Langs)
	if err != nil {
		return domain.OcrResult{}, err
	}
	return domain.OcrResult{Text: text}, nil
}

// kindFor resolves the solver mode when the client asked for auto. Arabic
// kind keywords only exist in the raw text (sanitize strips non-ASCII), so
// detection looks at the raw form first and falls back to the canonical one
// for markers the rewrite introduces, like = from يساوي
func (s *Svc) kindFor(reqMode, raw, canonical string) string {
	m := strings.TrimSpace(reqMode)
	if m != "" && m != solver.ModeAuto {
		return m
	}
	kind := s.pack.DetectKind(raw)
	if kind == rulepack.KindEvaluate {
		kind = s.pack.DetectKind(canonical)
	}
	return string(kind)
}

func toSteps(in []solver.Step) []domain.Step {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Step, 0, len(in))
	for _, st := range in {
		out = append(out, domain.Step{Title: st.Title, Content: st.Content})
	}
	return out
}
