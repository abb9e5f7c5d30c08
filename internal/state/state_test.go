package state

import (
	"strings"
	"testing"

	"rpl/internal/arena"
	"rpl/internal/directory"
	"rpl/internal/eval"
	"rpl/internal/numeric"
	"rpl/internal/object"
	"rpl/internal/settings"
)

func newTestState(t *testing.T) *eval.State {
	t.Helper()
	a := arena.New(1<<16, object.ArenaSizer{})
	root := directory.New(a, "", nil)
	return eval.New(a, root, settings.Default())
}

func TestSaveThenLoadRestoresVariablesAndStack(t *testing.T) {
	s := newTestState(t)
	if err := s.Store("X", object.Integer{V: numeric.SmallInt(7)}); err != nil {
		t.Fatalf("Store: %v", err)
	}
	s.Push(object.Integer{V: numeric.SmallInt(1)})
	s.Push(object.Integer{V: numeric.SmallInt(2)})

	var buf strings.Builder
	if err := Save(&buf, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s2 := newTestState(t)
	if err := Load(buf.String(), s2); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := s2.Depth(); got != 2 {
		t.Fatalf("depth after load = %d, want 2", got)
	}
	v, ok := s2.Variable("X")
	if !ok {
		t.Fatalf("X not restored")
	}
	i, ok := v.(object.Integer)
	if !ok {
		t.Fatalf("X is %T, want Integer", v)
	}
	got, _ := i.V.ToBigInt().Int64()
	if got != 7 {
		t.Fatalf("X = %d, want 7", got)
	}
}

func TestLoadClearsPriorState(t *testing.T) {
	s := newTestState(t)
	if err := s.Store("OLD", object.Integer{V: numeric.SmallInt(99)}); err != nil {
		t.Fatalf("Store: %v", err)
	}
	s.Push(object.Integer{V: numeric.SmallInt(1)})

	if err := Load("3 PRECISION\n", s); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Depth() != 0 {
		t.Fatalf("stack not cleared, depth = %d", s.Depth())
	}
	if _, ok := s.Variable("OLD"); ok {
		t.Fatalf("OLD should have been purged by Load")
	}
	if s.Settings.Precision != 3 {
		t.Fatalf("Precision = %d, want 3", s.Settings.Precision)
	}
}
