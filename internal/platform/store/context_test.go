package store

import (
	"context"
	"testing"
)

// TestSessionID_SetAndGet sets a session id and retrieves it
func TestSessionID_SetAndGet(t *testing.T) {
	t.Parallel()

	base := context.Background()
	ctx := WithSession(base, "sess-1")

	id, ok := SessionID(ctx)
	if !ok {
		t.Fatalf("SessionID not found")
	}
	if id != "sess-1" {
		t.Fatalf("SessionID mismatch got=%q want=%q", id, "sess-1")
	}
}

// TestSessionID_EmptyString reports false when empty string is stored
func TestSessionID_EmptyString(t *testing.T) {
	t.Parallel()

	ctx := WithSession(context.Background(), "")

	id, ok := SessionID(ctx)
	if ok {
		t.Fatalf("SessionID ok should be false for empty value")
	}
	if id != "" {
		t.Fatalf("SessionID should be empty got=%q", id)
	}
}

// TestSessionID_NotPresent returns false on base context
func TestSessionID_NotPresent(t *testing.T) {
	t.Parallel()

	id, ok := SessionID(context.Background())
	if ok || id != "" {
		t.Fatalf("SessionID should be absent on base context")
	}
}

// TestSessionID_NoLeak ensures adding value returns a new ctx and base has no value
func TestSessionID_NoLeak(t *testing.T) {
	t.Parallel()

	base := context.Background()
	_ = WithSession(base, "sess-1")

	id, ok := SessionID(base)
	if ok || id != "" {
		t.Fatalf("base context should not have session value")
	}
}

// TestRequestID_SetAndGet sets a request id and retrieves it
func TestRequestID_SetAndGet(t *testing.T) {
	t.Parallel()

	base := context.Background()
	ctx := WithRequestID(base, "req-123")

	id, ok := RequestID(ctx)
	if !ok {
		t.Fatalf("RequestID not found")
	}
	if id != "req-123" {
		t.Fatalf("RequestID mismatch got=%q want=%q", id, "req-123")
	}
}

// TestRequestID_EmptyString reports false when empty string is stored
func TestRequestID_EmptyString(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "")

	id, ok := RequestID(ctx)
	if ok {
		t.Fatalf("RequestID ok should be false for empty value")
	}
	if id != "" {
		t.Fatalf("RequestID should be empty got=%q", id)
	}
}

// TestRequestID_NotPresent returns false on base context
func TestRequestID_NotPresent(t *testing.T) {
	t.Parallel()

	id, ok := RequestID(context.Background())
	if ok || id != "" {
		t.Fatalf("RequestID should be absent on base context")
	}
}

// TestKeys_Isolation ensures session and request keys do not collide
func TestKeys_Isolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctx = WithSession(ctx, "sess-1")
	ctx = WithRequestID(ctx, "req-123")

	sid, sok := SessionID(ctx)
	req, rok := RequestID(ctx)

	if !sok || sid != "sess-1" {
		t.Fatalf("SessionID mismatch sok=%v sid=%q", sok, sid)
	}
	if !rok || req != "req-123" {
		t.Fatalf("RequestID mismatch rok=%v req=%q", rok, req)
	}
}
