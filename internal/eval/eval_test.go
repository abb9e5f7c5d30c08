package eval

import (
	"testing"

	"rpl/internal/arena"
	"rpl/internal/directory"
	"rpl/internal/numeric"
	"rpl/internal/object"
	"rpl/internal/settings"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	a := arena.New(1<<16, object.ArenaSizer{})
	root := directory.New(a, "", nil)
	return New(a, root, settings.Default())
}

func intObj(n int64) object.Object { return object.Integer{V: numeric.SmallInt(n)} }

func mustInt(t *testing.T, obj object.Object) int64 {
	t.Helper()
	i, ok := obj.(object.Integer)
	if !ok {
		t.Fatalf("expected Integer, got %T", obj)
	}
	v, ok := i.V.ToBigInt().Int64()
	if !ok {
		t.Fatalf("Int64: value does not fit")
	}
	return v
}

func TestArithmeticAndStack(t *testing.T) {
	s := newTestState(t)
	prog := object.Program{Body: []object.Object{
		intObj(2), intObj(3), object.Command{Name: "+"},
		intObj(4), object.Command{Name: "*"},
	}}
	if err := s.Exec(prog); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if s.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", s.Depth())
	}
	top, _ := s.Pop()
	if mustInt(t, top) != 20 {
		t.Fatalf("result = %v, want 20", top)
	}
}

func TestStoRcl(t *testing.T) {
	s := newTestState(t)
	prog := object.Program{Body: []object.Object{
		intObj(42), object.Text{S: "X"}, object.Command{Name: "STO"},
		object.Text{S: "X"}, object.Command{Name: "RCL"},
	}}
	if err := s.Exec(prog); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	top, err := s.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if mustInt(t, top) != 42 {
		t.Fatalf("result = %v, want 42", top)
	}
}

func TestForLoopSum(t *testing.T) {
	s := newTestState(t)
	// 0 1 5 FOR I I + NEXT  -> sums 1..5 == 15
	prog := object.Program{Body: []object.Object{
		intObj(0),
		intObj(1), intObj(5),
		object.ForLoop{
			Name: "I",
			Body: object.Program{Body: []object.Object{
				object.Symbol{Name: "I"}, object.Command{Name: "+"},
			}},
		},
	}}
	if err := s.Exec(prog); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	top, err := s.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if mustInt(t, top) != 15 {
		t.Fatalf("result = %v, want 15", top)
	}
}

func TestUndefinedNameErrors(t *testing.T) {
	s := newTestState(t)
	if err := s.Exec(object.Symbol{Name: "NOPE"}); err == nil {
		t.Fatalf("expected undefined-name error")
	}
}

func TestIfThenElse(t *testing.T) {
	s := newTestState(t)
	prog := object.Program{Body: []object.Object{
		object.IfThenElse{
			Cond: object.Program{Body: []object.Object{intObj(1)}},
			Then: object.Program{Body: []object.Object{intObj(100)}},
			Else: object.Program{Body: []object.Object{intObj(200)}},
			HasElse: true,
		},
	}}
	if err := s.Exec(prog); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	top, _ := s.Pop()
	if mustInt(t, top) != 100 {
		t.Fatalf("result = %v, want 100", top)
	}
}
