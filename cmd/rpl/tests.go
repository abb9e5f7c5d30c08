package main

import (
	"fmt"
	"strings"

	"rpl/internal/eval"
	"rpl/internal/numeric"
	"rpl/internal/object"
	"rpl/internal/state"
)

// selfTest is one of the simulator's built-in smoke tests, selected by
// -T<name>/-O<name> (spec §6). Each runs against a fresh evaluator: the
// RPL tests check the top of the resulting stack, and "state" checks that
// a saved state reloads without error.
type selfTest struct {
	name string
	run  func(s *eval.State) error
}

var selfTests = []selfTest{
	{name: "arith", run: runRPLExpectStack("2 3 + 4 *", "20")},
	{name: "stack", run: runRPLExpectStack("1 2 SWAP DROP", "2")},
	{name: "loop", run: runRPLExpectStack("0 1 5 FOR I I + NEXT", "15")},
	{name: "state", run: testStateRoundTrip},
}

func runRPLExpectStack(src, wantTop string) func(*eval.State) error {
	return func(s *eval.State) error {
		if err := loadAndRun(s, src); err != nil {
			return err
		}
		got := renderTop(s)
		if got != wantTop {
			return fmt.Errorf("%s -> top of stack %q, want %q", src, got, wantTop)
		}
		return nil
	}
}

func testStateRoundTrip(s *eval.State) error {
	if err := s.Store("X", object.Integer{V: numeric.SmallInt(7)}); err != nil {
		return fmt.Errorf("store: %v", err)
	}
	var buf strings.Builder
	if err := state.Save(&buf, s); err != nil {
		return err
	}
	return state.Load(buf.String(), s)
}

// selfTestsByName returns the tests selected by name ("all" selects
// every test), or an error if name matches none.
func selfTestsByName(name string) ([]selfTest, error) {
	if name == "" {
		return nil, nil
	}
	if name == "all" {
		return selfTests, nil
	}
	for _, t := range selfTests {
		if t.name == name {
			return []selfTest{t}, nil
		}
	}
	return nil, fmt.Errorf("no such test %q", name)
}

func runSelfTests(tests []selfTest, cfg simConfig) (failed []string) {
	for _, t := range tests {
		s := newEvaluator(cfg)
		if err := t.run(s); err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", t.name, err))
		}
	}
	return failed
}
