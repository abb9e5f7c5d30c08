package locals

import (
	"testing"

	"rpl/internal/arena"
)

type fixedSizer struct{}

func (fixedSizer) Size(buf []byte, addr arena.Addr) (int, error) { return 4, nil }

func TestBindAndLookup(t *testing.T) {
	a := arena.New(1024, fixedSizer{})
	s := New(a)
	s.PushFrame()
	s.Bind("I", 10)
	if got, ok := s.Lookup("I"); !ok || got != 10 {
		t.Fatalf("Lookup(I) = %v, %v, want 10, true", got, ok)
	}
	s.PopFrame()
	if _, ok := s.Lookup("I"); ok {
		t.Fatalf("I should not be visible after PopFrame")
	}
}

func TestNestedFramesShadow(t *testing.T) {
	a := arena.New(1024, fixedSizer{})
	s := New(a)
	s.PushFrame()
	s.Bind("I", 1)
	s.PushFrame()
	s.Bind("I", 2)
	if got, _ := s.Lookup("I"); got != 2 {
		t.Fatalf("inner I = %v, want 2", got)
	}
	s.PopFrame()
	if got, _ := s.Lookup("I"); got != 1 {
		t.Fatalf("outer I after inner pop = %v, want 1", got)
	}
	if s.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", s.Depth())
	}
	s.PopFrame()
	if s.Depth() != 0 {
		t.Fatalf("Depth() after final pop = %d, want 0", s.Depth())
	}
}

func TestSetRebindsExisting(t *testing.T) {
	a := arena.New(1024, fixedSizer{})
	s := New(a)
	s.PushFrame()
	s.Bind("X", 5)
	if !s.Set("X", 9) {
		t.Fatalf("Set(X) should report true")
	}
	if got, _ := s.Lookup("X"); got != 9 {
		t.Fatalf("Lookup(X) after Set = %v, want 9", got)
	}
	if s.Set("NOPE", 1) {
		t.Fatalf("Set(NOPE) should report false")
	}
}

func TestPopFrameOnEmptyStackIsNoop(t *testing.T) {
	a := arena.New(1024, fixedSizer{})
	s := New(a)
	s.PopFrame() // must not panic
	if s.Depth() != 0 {
		t.Fatalf("Depth() = %d, want 0", s.Depth())
	}
}
