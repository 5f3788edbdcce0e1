package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"mathgate/internal/core/mathexpr"
	"mathgate/internal/modkit/repokit"
	perr "mathgate/internal/platform/errors"
	"mathgate/internal/services/sessions/domain"
	"mathgate/internal/services/sessions/repo"
)

type fakeRepo struct {
	rows map[string]repo.RowSession
}

func newFakeRepo() *fakeRepo { return &fakeRepo{rows: map[string]repo.RowSession{}} }

func (f *fakeRepo) Insert(_ context.Context, id, mode string) (repo.RowSession, error) {
	row := repo.RowSession{ID: id, AngleMode: mode, CreatedAt: "now", UpdatedAt: "now"}
	f.rows[id] = row
	return row, nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (repo.RowSession, error) {
	row, ok := f.rows[id]
	if !ok {
		return repo.RowSession{}, perr.NotFoundf("session %s", id)
	}
	return row, nil
}

func (f *fakeRepo) SetAngleMode(_ context.Context, id, mode string) (repo.RowSession, error) {
	row, ok := f.rows[id]
	if !ok {
		return repo.RowSession{}, perr.NotFoundf("session %s", id)
	}
	row.AngleMode = mode
	f.rows[id] = row
	return row, nil
}

type fakeBinder struct{ r repo.Repo }

func (b fakeBinder) Bind(repokit.Queryer) repo.Repo { return b.r }

type nopTx struct{}

func (nopTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (nopTx) Query(context.Context, string, ...any) (repokit.Rows, error)     { return nil, nil }
func (nopTx) QueryRow(context.Context, string, ...any) repokit.Row            { return nil }
func (nopTx) Tx(_ context.Context, fn func(repokit.RowQuerier) error) error {
	return fn(nopTx{})
}

func newSvc(r repo.Repo) *Svc { return New(nopTx{}, fakeBinder{r: r}) }

func TestCreate_DefaultsToRadians(t *testing.T) {
	t.Parallel()

	s := newSvc(newFakeRepo())
	sess, err := s.Create(context.Background())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := uuid.Parse(sess.ID); err != nil {
		t.Fatalf("id %q is not a uuid", sess.ID)
	}
	if sess.AngleMode != "radians" {
		t.Fatalf("angle mode = %q want radians", sess.AngleMode)
	}
}

func TestSetAngleMode(t *testing.T) {
	t.Parallel()

	s := newSvc(newFakeRepo())
	sess, err := s.Create(context.Background())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.SetAngleMode(context.Background(), sess.ID, domain.SetAngleModeInput{Mode: "degrees"})
	if err != nil {
		t.Fatalf("SetAngleMode: %v", err)
	}
	if got.AngleMode != "degrees" {
		t.Fatalf("angle mode = %q want degrees", got.AngleMode)
	}

	if _, err := s.SetAngleMode(context.Background(), sess.ID, domain.SetAngleModeInput{Mode: "gradians"}); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected Validation for bad mode, got %v", err)
	}
}

func TestGet_InvalidAndMissing(t *testing.T) {
	t.Parallel()

	s := newSvc(newFakeRepo())

	if _, err := s.Get(context.Background(), "not-a-uuid"); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected Validation for malformed id, got %v", err)
	}
	if _, err := s.Get(context.Background(), uuid.NewString()); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestAngleModeFor(t *testing.T) {
	t.Parallel()

	s := newSvc(newFakeRepo())

	mode, err := s.AngleModeFor(context.Background(), "")
	if err != nil || mode != mathexpr.AngleRadians {
		t.Fatalf("empty id should default to radians, got %v %v", mode, err)
	}

	sess, _ := s.Create(context.Background())
	if _, err := s.SetAngleMode(context.Background(), sess.ID, domain.SetAngleModeInput{Mode: "degrees"}); err != nil {
		t.Fatalf("SetAngleMode: %v", err)
	}
	mode, err = s.AngleModeFor(context.Background(), sess.ID)
	if err != nil || mode != mathexpr.AngleDegrees {
		t.Fatalf("expected degrees, got %v %v", mode, err)
	}
}
