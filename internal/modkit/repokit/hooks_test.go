package repokit

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"mathgate/internal/platform/store"
)

// countingQueryer tallies calls and keeps the last statement and args
type countingQueryer struct {
	execCalls     int
	queryCalls    int
	queryRowCalls int

	lastSQL  string
	lastArgs []any
}

func (c *countingQueryer) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	c.execCalls++
	c.lastSQL = sql
	c.lastArgs = append([]any(nil), args...)
	var zero store.CommandTag
	return zero, nil
}

func (c *countingQueryer) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	c.queryCalls++
	c.lastSQL = sql
	c.lastArgs = append([]any(nil), args...)
	var zero store.Rows
	return zero, nil
}

func (c *countingQueryer) QueryRow(ctx context.Context, sql string, args ...any) store.Row {
	c.queryRowCalls++
	c.lastSQL = sql
	c.lastArgs = append([]any(nil), args...)
	var zero store.Row
	return zero
}

// countingRunner stands in for the TxRunner behind the hook wrapper
type countingRunner struct {
	q *countingQueryer

	txCalls int

	execCalls  int
	queryCalls int
	rowCalls   int

	lastSQL  string
	lastArgs []any
}

func (c *countingRunner) Tx(ctx context.Context, fn func(q Queryer) error) error {
	c.txCalls++
	return fn(c.q)
}

func (c *countingRunner) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	c.execCalls++
	c.lastSQL = sql
	c.lastArgs = append([]any(nil), args...)
	var zero store.CommandTag
	return zero, nil
}

func (c *countingRunner) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	c.queryCalls++
	c.lastSQL = sql
	c.lastArgs = append([]any(nil), args...)
	var zero store.Rows
	return zero, nil
}

func (c *countingRunner) QueryRow(ctx context.Context, sql string, args ...any) store.Row {
	c.rowCalls++
	c.lastSQL = sql
	c.lastArgs = append([]any(nil), args...)
	var zero store.Row
	return zero
}

func TestWithBeginHooks_TxRunsHooksInOrderAndThenFn(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q := &countingQueryer{}
	inner := &countingRunner{q: q}

	var seq []string

	h1 := func(ctx context.Context, gotQ Queryer) error {
		if gotQ != q {
			t.Fatalf("hook received different Queryer instance")
		}
		seq = append(seq, "hook1")
		return nil
	}
	h2 := func(ctx context.Context, gotQ Queryer) error {
		if gotQ != q {
			t.Fatalf("hook received different Queryer instance")
		}
		seq = append(seq, "hook2")
		return nil
	}

	runner := WithBeginHooks(inner, h1, h2)

	var fnRan bool
	err := runner.Tx(ctx, func(gotQ Queryer) error {
		if gotQ != q {
			t.Fatalf("fn received different Queryer instance")
		}
		fnRan = true
		seq = append(seq, "fn")
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSeq := []string{"hook1", "hook2", "fn"}
	if !reflect.DeepEqual(seq, wantSeq) {
		t.Fatalf("sequence mismatch want=%v got=%v", wantSeq, seq)
	}
	if !fnRan {
		t.Fatalf("fn should have run")
	}
	if inner.txCalls != 1 {
		t.Fatalf("inner Tx should be called once")
	}
}

func TestWithBeginHooks_TxHookErrorShortCircuitsBeforeFn(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q := &countingQueryer{}
	inner := &countingRunner{q: q}

	testErr := errors.New("advisory lock denied")
	var fnRan bool

	h1 := func(ctx context.Context, gotQ Queryer) error { return testErr }
	h2 := func(ctx context.Context, gotQ Queryer) error {
		t.Fatalf("second hook should not run when first fails")
		return nil
	}

	r := WithBeginHooks(inner, h1, h2)
	err := r.Tx(ctx, func(q Queryer) error { fnRan = true; return nil })

	if !errors.Is(err, testErr) {
		t.Fatalf("expected error to propagate from hook got=%v", err)
	}
	if fnRan {
		t.Fatalf("fn should not have run when hook fails")
	}
}

func TestWithBeginHooks_DelegatesExecQueryQueryRow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	inner := &countingRunner{q: &countingQueryer{}}
	r := WithBeginHooks(inner) // delegation only, no hooks

	_, err := r.Exec(ctx, "update solve_attempts set seq=$1", 7)
	if err != nil {
		t.Fatalf("Exec returned error: %v", err)
	}
	if inner.execCalls != 1 || inner.lastSQL != "update solve_attempts set seq=$1" || !reflect.DeepEqual(inner.lastArgs, []any{7}) {
		t.Fatalf("Exec did not delegate correctly")
	}

	_, err = r.Query(ctx, "select seq from solve_attempts where session_id=$1", 9)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if inner.queryCalls != 1 || inner.lastSQL != "select seq from solve_attempts where session_id=$1" ||
		!reflect.DeepEqual(inner.lastArgs, []any{9}) {
		t.Fatalf("Query did not delegate correctly")
	}

	_ = r.QueryRow(ctx, "select angle_mode from sessions where id=$1", "abc")
	if inner.rowCalls != 1 || inner.lastSQL != "select angle_mode from sessions where id=$1" ||
		!reflect.DeepEqual(inner.lastArgs, []any{"abc"}) {
		t.Fatalf("QueryRow did not delegate correctly")
	}
}

func TestRunMidHooks_SuccessAndShortCircuit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q := &countingQueryer{}
	seq := []string{}

	// both hooks run, in order
	m1 := func(ctx context.Context, _ Queryer) error { seq = append(seq, "m1"); return nil }
	m2 := func(ctx context.Context, _ Queryer) error { seq = append(seq, "m2"); return nil }

	if err := RunMidHooks(ctx, q, m1, m2); err != nil {
		t.Fatalf("RunMidHooks returned error on success path: %v", err)
	}
	if !reflect.DeepEqual(seq, []string{"m1", "m2"}) {
		t.Fatalf("mid hooks did not run in order")
	}

	// first failure stops the chain
	seq = seq[:0]
	testErr := errors.New("seq allocation failed")
	mErr := func(ctx context.Context, _ Queryer) error { seq = append(seq, "mErr"); return testErr }
	mNever := func(ctx context.Context, _ Queryer) error {
		t.Fatalf("mid hook after error should not run")
		return nil
	}

	err := RunMidHooks(ctx, q, m1, mErr, mNever)
	if !errors.Is(err, testErr) {
		t.Fatalf("expected error to propagate from mid hook got=%v", err)
	}
	if !reflect.DeepEqual(seq, []string{"m1", "mErr"}) {
		t.Fatalf("mid hooks should stop on first error")
	}
}
