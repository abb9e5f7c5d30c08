// Package locals implements the evaluator's locals-frame stack (spec
// §4.8: "a frame: a locals-stack entry carrying a name table and value
// slots"). The evaluator pushes a frame for each FOR loop body
// iteration and pops it when that iteration completes or fails.
//
// Storage is a single flat (names, values) pair rather than one
// allocation per frame: Push/Pop just record/restore a length, which
// keeps the whole stack as one slice the arena can register as a GC
// root, matching how the operand stack itself is rooted.
package locals

import "rpl/internal/arena"

// Stack is the locals-frame stack for one evaluation.
type Stack struct {
	names      []string
	values     []arena.Addr
	frameStart []int
}

// New creates an empty locals stack and registers its value slots as
// a GC root on a.
func New(a *arena.Arena) *Stack {
	s := &Stack{}
	a.RegisterStackRoot(&s.values)
	return s
}

// PushFrame opens a new frame; subsequent Bind calls belong to it
// until the matching PopFrame.
func (s *Stack) PushFrame() {
	s.frameStart = append(s.frameStart, len(s.values))
}

// PopFrame discards the innermost frame and all its bindings.
func (s *Stack) PopFrame() {
	if len(s.frameStart) == 0 {
		return
	}
	start := s.frameStart[len(s.frameStart)-1]
	s.frameStart = s.frameStart[:len(s.frameStart)-1]
	s.names = s.names[:start]
	s.values = s.values[:start]
}

// Bind adds name to the innermost open frame. With no frame open it
// binds at the top level, which the evaluator never does in practice
// but is harmless.
func (s *Stack) Bind(name string, addr arena.Addr) {
	s.names = append(s.names, name)
	s.values = append(s.values, addr)
}

// Lookup searches active bindings innermost-first, matching lexical
// shadowing of an outer loop variable by an inner one of the same name.
func (s *Stack) Lookup(name string) (arena.Addr, bool) {
	for i := len(s.names) - 1; i >= 0; i-- {
		if s.names[i] == name {
			return s.values[i], true
		}
	}
	return 0, false
}

// Set rebinds an existing name to a new address (e.g. STO against a
// local), reporting whether the name was found.
func (s *Stack) Set(name string, addr arena.Addr) bool {
	for i := len(s.names) - 1; i >= 0; i-- {
		if s.names[i] == name {
			s.values[i] = addr
			return true
		}
	}
	return false
}

// Depth reports how many frames are currently open.
func (s *Stack) Depth() int { return len(s.frameStart) }
