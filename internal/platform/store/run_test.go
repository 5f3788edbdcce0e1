package store

import (
	"context"
	"errors"
	"testing"
)

// runFakeTx records the ctx it was called with and forwards fn
type runFakeTx struct {
	lastCtx context.Context
	err     error
}

func (f *runFakeTx) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return nil, nil
}
func (f *runFakeTx) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return nil, nil
}
func (f *runFakeTx) QueryRow(ctx context.Context, sql string, args ...any) Row { return nil }

func (f *runFakeTx) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	f.lastCtx = ctx
	if fn != nil {
		if err := fn(f); err != nil {
			return err
		}
	}
	return f.err
}

// TestRunInSession_ScopesContext ensures fn sees the session id on ctx
func TestRunInSession_ScopesContext(t *testing.T) {
	t.Parallel()

	ftx := &runFakeTx{}
	called := false

	err := RunInSession(context.Background(), ftx, "sess-9", func(ctx context.Context, q RowQuerier) error {
		called = true
		id, ok := SessionID(ctx)
		if !ok || id != "sess-9" {
			t.Fatalf("fn ctx missing session id, got %q ok=%v", id, ok)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunInSession returned error: %v", err)
	}
	if !called {
		t.Fatalf("callback was not invoked")
	}
	if id, ok := SessionID(ftx.lastCtx); !ok || id != "sess-9" {
		t.Fatalf("Tx ctx missing session id, got %q ok=%v", id, ok)
	}
}

// TestRunInSession_PropagatesError bubbles fn errors
func TestRunInSession_PropagatesError(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")
	ftx := &runFakeTx{}

	err := RunInSession(context.Background(), ftx, "sess-9", func(ctx context.Context, q RowQuerier) error {
		return want
	})
	if !errors.Is(err, want) {
		t.Fatalf("RunInSession did not propagate error, got %v", err)
	}
}
