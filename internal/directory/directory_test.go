package directory

import (
	"testing"

	"rpl/internal/arena"
)

type fixedSizer struct{}

func (fixedSizer) Size(buf []byte, addr arena.Addr) (int, error) { return 4, nil }

func TestStoreRecall(t *testing.T) {
	a := arena.New(1024, fixedSizer{})
	root := New(a, "", nil)
	root.Store("X", 7)
	got, ok := root.Recall("X")
	if !ok || got != 7 {
		t.Fatalf("Recall(X) = %v, %v, want 7, true", got, ok)
	}
	if _, ok := root.Recall("Y"); ok {
		t.Fatalf("Recall(Y) should not be found")
	}
}

func TestRecallWalksAncestors(t *testing.T) {
	a := arena.New(1024, fixedSizer{})
	root := New(a, "HOME", nil)
	root.Store("G", 1)
	sub := root.GetOrCreateChild("WORK")
	sub.Store("L", 2)

	if got, ok := sub.Recall("G"); !ok || got != 1 {
		t.Fatalf("subdirectory did not see ancestor binding: %v %v", got, ok)
	}
	if _, ok := root.Recall("L"); ok {
		t.Fatalf("ancestor should not see descendant binding")
	}
}

func TestPurge(t *testing.T) {
	a := arena.New(1024, fixedSizer{})
	root := New(a, "", nil)
	root.Store("X", 3)
	if !root.Purge("X") {
		t.Fatalf("Purge(X) should report true")
	}
	if _, ok := root.Recall("X"); ok {
		t.Fatalf("X should be gone after Purge")
	}
	if root.Purge("X") {
		t.Fatalf("second Purge(X) should report false")
	}
}

func TestPath(t *testing.T) {
	a := arena.New(1024, fixedSizer{})
	root := New(a, "HOME", nil)
	sub := root.GetOrCreateChild("WORK")
	leaf := sub.GetOrCreateChild("SUB")
	if got := leaf.Path(); got != "HOME.WORK.SUB" {
		t.Fatalf("Path() = %q, want HOME.WORK.SUB", got)
	}
}

func TestGetOrCreateChildIsIdempotent(t *testing.T) {
	a := arena.New(1024, fixedSizer{})
	root := New(a, "HOME", nil)
	a1 := root.GetOrCreateChild("WORK")
	a2 := root.GetOrCreateChild("WORK")
	if a1 != a2 {
		t.Fatalf("GetOrCreateChild returned different directories for the same name")
	}
}
