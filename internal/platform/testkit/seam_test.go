package testkit

import (
	"sync"
	"testing"
	"time"
)

var (
	normalizeFn = func(s string) string { return s + "!" }
	swapTargetI = 10
)

func TestSwap_FunctionAndRestore(t *testing.T) {
	// swap inside a subtest so Cleanup fires before the restore check
	t.Run("swap-in-subtest", func(t *testing.T) {
		if got := normalizeFn("x"); got != "x!" {
			t.Fatalf("precondition failed, got %q", got)
		}
		Swap(t, &normalizeFn, func(string) string { return "swapped" })
		if got := normalizeFn("x"); got != "swapped" {
			t.Fatalf("swap did not take effect, got %q", got)
		}
	})

	if got := normalizeFn("x"); got != "x!" {
		t.Fatalf("swap did not restore original, got %q", got)
	}
}

func TestSwap_NonFunctionType(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		if swapTargetI != 10 {
			t.Fatalf("precondition failed, got %d", swapTargetI)
		}
		Swap(t, &swapTargetI, 42)
		if swapTargetI != 42 {
			t.Fatalf("swap failed, got %d want 42", swapTargetI)
		}
	})
	if swapTargetI != 10 {
		t.Fatalf("swap did not restore original, got %d want 10", swapTargetI)
	}
}

func TestSerial_GuardsConcurrentSubtests(t *testing.T) {
	t.Parallel()

	var seqMu sync.Mutex
	seq := make([]string, 0, 4)

	record := func(s string) {
		seqMu.Lock()
		seq = append(seq, s)
		seqMu.Unlock()
	}

	t.Run("A", func(t *testing.T) {
		t.Parallel()
		Serial(t)
		record("A-start")
		time.Sleep(50 * time.Millisecond)
		record("A-end")
	})

	t.Run("B", func(t *testing.T) {
		t.Parallel()
		Serial(t)
		record("B-start")
		time.Sleep(50 * time.Millisecond)
		record("B-end")
	})

	t.Cleanup(func() {
		// the only valid orders are A fully before B or B fully before A
		seqMu.Lock()
		defer seqMu.Unlock()
		if len(seq) != 4 {
			t.Fatalf("unexpected sequence length %d, seq=%v", len(seq), seq)
		}
		aStart, aEnd, bStart, bEnd := -1, -1, -1, -1
		for i, s := range seq {
			switch s {
			case "A-start":
				aStart = i
			case "A-end":
				aEnd = i
			case "B-start":
				bStart = i
			case "B-end":
				bEnd = i
			}
		}
		groupedAFirst := aStart != -1 && aEnd != -1 && aStart < aEnd && aEnd < bStart
		groupedBFirst := bStart != -1 && bEnd != -1 && bStart < bEnd && bEnd < aStart
		if !(groupedAFirst || groupedBFirst) {
			t.Fatalf("expected grouped execution, got seq=%v", seq)
		}
	})
}
