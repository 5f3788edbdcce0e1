package module

import (
	"testing"

	pstrings "mathgate/internal/platform/strings"

	"mathgate/internal/modkit/httpkit"
)

// SeqPort is the lookup target for the PortsOf tests
type SeqPort interface {
	NextSeq() int
}

type seqCounter struct{ n int }

func (s seqCounter) NextSeq() int { return s.n }

// fakeModule hands back a fixed name and ports payload
type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string               { return m.name }
func (m fakeModule) Ports() PortSet             { return m.ports }
func (m fakeModule) MountRoutes(httpkit.Router) {} // no-op, satisfies Module

func TestPortsOf_NilPorts(t *testing.T) {
	t.Parallel()

	m := fakeModule{name: "nilPorts", ports: nil}
	if _, ok := PortsOf[SeqPort](m); ok {
		t.Fatalf("expected ok=false when Ports() is nil")
	}
}

func TestPortsOf_DirectInterfaceMatch(t *testing.T) {
	t.Parallel()

	want := seqCounter{n: 42}
	m := fakeModule{name: "direct", ports: SeqPort(want)}

	got, ok := PortsOf[SeqPort](m)
	if !ok {
		t.Fatalf("expected ok=true for direct interface match")
	}
	if got.NextSeq() != 42 {
		t.Fatalf("unexpected seq, got %d want 42", got.NextSeq())
	}
}

func TestPortsOf_StructBundle_ExportedField(t *testing.T) {
	t.Parallel()

	// exported fields are searched
	type Ports struct {
		Seq   SeqPort
		Extra int
	}
	want := seqCounter{n: 7}
	m := fakeModule{
		name:  "bundle",
		ports: Ports{Seq: want, Extra: 1},
	}

	got, ok := PortsOf[SeqPort](m)
	if !ok {
		t.Fatalf("expected ok=true when bundle has exported Seq field")
	}
	if got.NextSeq() != 7 {
		t.Fatalf("unexpected seq, got %d want 7", got.NextSeq())
	}
}

func TestPortsOf_StructBundle_UnexportedField_Ignored(t *testing.T) {
	t.Parallel()

	// unexported fields never match
	type ports struct {
		seq   SeqPort
		extra int
	}
	m := fakeModule{
		name:  "unexported",
		ports: ports{seq: seqCounter{n: 1}, extra: 2},
	}

	if _, ok := PortsOf[SeqPort](m); ok {
		t.Fatalf("expected ok=false when only unexported field implements T")
	}
}

func TestMustPortsOf_PanicsWithModuleName(t *testing.T) {
	t.Parallel()

	m := fakeModule{name: "sessions", ports: nil}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic from MustPortsOf when port missing")
		}
		msg, _ := r.(string)
		if msg == "" || !pstrings.Contains(msg, "sessions") || !pstrings.Contains(msg, "requested port not found") {
			t.Fatalf("panic message should include module name and hint, got %q", msg)
		}
	}()

	_ = MustPortsOf[SeqPort](m) // should panic
}

func TestMustPortsOf_ReturnsValue(t *testing.T) {
	t.Parallel()

	m := fakeModule{
		name:  "ok",
		ports: SeqPort(seqCounter{n: 99}), // direct match so PortsOf succeeds
	}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("did not expect panic, got %v", r)
		}
	}()

	got := MustPortsOf[SeqPort](m)
	if got.NextSeq() != 99 {
		t.Fatalf("unexpected seq from MustPortsOf, got %d want 99", got.NextSeq())
	}
}
