package dump

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

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

func TestWriteOnFailureThenLoadRoundTrips(t *testing.T) {
	s := newTestState(t)
	s.Push(object.Integer{V: numeric.SmallInt(5)})
	if err := s.Store("X", object.Integer{V: numeric.SmallInt(1)}); err != nil {
		t.Fatalf("Store: %v", err)
	}

	path := filepath.Join(t.TempDir(), "crash.dump")
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := WriteOnFailure(path, s, errors.New("stack underflow"), at); err != nil {
		t.Fatalf("WriteOnFailure: %v", err)
	}

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Cause != "stack underflow" {
		t.Fatalf("Cause = %q", snap.Cause)
	}
	if len(snap.Stack) != 1 || snap.Stack[0] != "5" {
		t.Fatalf("Stack = %v", snap.Stack)
	}
	if len(snap.Variables) != 1 || snap.Variables[0].Name != "X" {
		t.Fatalf("Variables = %v", snap.Variables)
	}
}
