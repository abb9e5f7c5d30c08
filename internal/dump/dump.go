// Package dump writes a binary snapshot of an evaluator's state to the
// dump-on-failure path (spec §6's `-D<path>` flag) — a diagnostic
// artifact distinct from the plain-UTF-8 .48S persistence format in
// internal/state, meant for post-mortem inspection rather than reload.
package dump

import (
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"rpl/internal/diag"
	"rpl/internal/eval"
	"rpl/internal/render"
	"rpl/internal/settings"
)

// Snapshot is the binary-encoded record written on a simulator failure.
type Snapshot struct {
	Cause     string    `msgpack:"cause"`
	Code      int       `msgpack:"code,omitempty"`
	Timestamp time.Time `msgpack:"timestamp"`

	Precision     int    `msgpack:"precision"`
	DisplayMode   string `msgpack:"display_mode"`
	DisplayDigits int    `msgpack:"display_digits"`

	Stack     []string `msgpack:"stack"`      // rendered deepest-first
	Variables []Var    `msgpack:"variables"`

	ArenaBytes  int `msgpack:"arena_bytes"`
	ArenaUsed   int `msgpack:"arena_used_low"`
	LocalsDepth int `msgpack:"locals_depth"`
}

// Var is one global variable's name and rendered value at dump time.
type Var struct {
	Name  string `msgpack:"name"`
	Value string `msgpack:"value"`
}

// Build captures s's current stack, variables and settings into a
// Snapshot, tagging it with the failure that triggered the dump.
func Build(s *eval.State, cause error, at time.Time) Snapshot {
	cfg := s.Settings
	snap := Snapshot{
		Cause:         cause.Error(),
		Timestamp:     at,
		Precision:     cfg.Precision,
		DisplayMode:   displayModeName(cfg.DisplayMode),
		DisplayDigits: cfg.DisplayDigits,
		ArenaBytes:    len(s.Arena.Bytes()),
		ArenaUsed:     s.Arena.Stats().LowObjects,
		LocalsDepth:   s.Locals.Depth(),
	}
	if derr, ok := cause.(*diag.Error); ok {
		snap.Code = int(derr.Code)
	}
	for _, v := range s.Stack() {
		snap.Stack = append(snap.Stack, render.Text(v, cfg, render.OnScreen))
	}
	for _, name := range s.VariableNames() {
		val, ok := s.Variable(name)
		if !ok {
			continue
		}
		snap.Variables = append(snap.Variables, Var{Name: name, Value: render.Text(val, cfg, render.OnScreen)})
	}
	return snap
}

func displayModeName(m settings.DisplayMode) string {
	switch m {
	case settings.Fix:
		return "FIX"
	case settings.Sci:
		return "SCI"
	case settings.Eng:
		return "ENG"
	case settings.Sig:
		return "SIG"
	default:
		return "STD"
	}
}

// WriteOnFailure encodes a Snapshot of s as MessagePack and writes it to
// path (the -D<path> dump-on-failure destination), overwriting any
// existing file.
func WriteOnFailure(path string, s *eval.State, cause error, at time.Time) error {
	snap := Build(s, cause, at)
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load decodes a Snapshot previously written by WriteOnFailure, for
// tooling that inspects a dump after the fact.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
