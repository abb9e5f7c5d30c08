// Package eval implements the operand-stack evaluator: EVAL/EXEC
// dispatch, name resolution through locals then the current directory,
// and the command table that gives Command objects their behavior
// (spec §2 module 6, §4.6).
package eval

import (
	"rpl/internal/arena"
	"rpl/internal/control"
	"rpl/internal/diag"
	"rpl/internal/directory"
	"rpl/internal/locals"
	"rpl/internal/object"
	"rpl/internal/settings"
	"rpl/internal/trace"
)

// State is one evaluation's operand stack plus the context it runs
// against. It implements control.Runner so the five control-flow
// constructs can drive it without control importing eval.
type State struct {
	Arena    *arena.Arena
	Dir      *directory.Directory
	Locals   *locals.Stack
	Ctx      *diag.Context
	Settings settings.Settings

	stack []object.Object

	trace trace.Channel
}

// SetTrace gates command-dispatch tracing behind the "eval" channel
// (spec §6's DB48X_TRACES/-t<pattern>).
func (s *State) SetTrace(ch trace.Channel) { s.trace = ch }

// New creates an evaluator over an existing arena and root directory.
func New(a *arena.Arena, root *directory.Directory, cfg settings.Settings) *State {
	return &State{
		Arena:    a,
		Dir:      root,
		Locals:   locals.New(a),
		Ctx:      diag.NewContext(),
		Settings: cfg,
	}
}

// Stack returns the current operand stack, deepest element first.
func (s *State) Stack() []object.Object { return s.stack }

// Depth reports the number of operands currently on the stack.
func (s *State) Depth() int { return len(s.stack) }

// VariableNames returns the current directory's own variable names
// (not its ancestors'), for enumerating what a state save persists.
func (s *State) VariableNames() []string { return s.Dir.Names() }

// Variable fetches the value bound to name in the current directory or,
// failing that, in its ancestors.
func (s *State) Variable(name string) (object.Object, bool) {
	addr, ok := s.Dir.Recall(name)
	if !ok {
		return nil, false
	}
	obj, err := object.Get(s.Arena, addr)
	if err != nil {
		return nil, false
	}
	return obj, true
}

// Clear empties the operand stack, closes every open locals frame and
// purges every variable in the current directory (spec §6: loading a
// state file "replays this text through the parser/evaluator after
// clearing the runtime").
func (s *State) Clear() {
	s.stack = s.stack[:0]
	for s.Locals.Depth() > 0 {
		s.Locals.PopFrame()
	}
	for _, name := range s.Dir.Names() {
		s.Dir.Purge(name)
	}
}

// Push places obj on top of the stack.
func (s *State) Push(obj object.Object) { s.stack = append(s.stack, obj) }

// Pop removes and returns the top of the stack, or a stack-underflow
// error if it is empty.
func (s *State) Pop() (object.Object, *diag.Error) {
	if len(s.stack) == 0 {
		return nil, diag.ResourceError(diag.ResourceStackUnderflow, "too few arguments")
	}
	v := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return v, nil
}

// Peek returns the nth-from-top operand (0 = top) without removing it.
func (s *State) Peek(n int) (object.Object, *diag.Error) {
	if n < 0 || n >= len(s.stack) {
		return nil, diag.ResourceError(diag.ResourceStackUnderflow, "too few arguments")
	}
	return s.stack[len(s.stack)-1-n], nil
}

// PushFrame opens a new locals frame.
func (s *State) PushFrame() { s.Locals.PushFrame() }

// PopFrame closes the innermost locals frame.
func (s *State) PopFrame() { s.Locals.PopFrame() }

// BindLocal materializes val into the arena and binds name to it in
// the innermost open locals frame (used by FOR/NEXT's loop variable).
func (s *State) BindLocal(name string, val object.Object) *diag.Error {
	addr, err := object.Put(s.Arena, val)
	if err != nil {
		return diag.ResourceError(diag.ResourceOutOfMemory, "%v", err)
	}
	s.Locals.Bind(name, addr)
	return nil
}

// Precision returns the decimal precision arithmetic should use.
func (s *State) Precision() int { return s.Settings.Precision }

// Poll reports a pending interrupt as an error, clearing nothing (the
// caller unwinds on a non-nil return, matching spec §5's cooperative
// cancellation contract).
func (s *State) Poll() *diag.Error { return s.Ctx.Poll() }

// resolve looks up name: innermost locals frame first, then the
// current directory and its ancestors (spec §4.8).
func (s *State) resolve(name string) (object.Object, *diag.Error) {
	if addr, ok := s.Locals.Lookup(name); ok {
		obj, err := object.Get(s.Arena, addr)
		if err != nil {
			return nil, diag.IOError(diag.IOFileNotFound, "%v", err)
		}
		return obj, nil
	}
	if addr, ok := s.Dir.Recall(name); ok {
		obj, err := object.Get(s.Arena, addr)
		if err != nil {
			return nil, diag.IOError(diag.IOFileNotFound, "%v", err)
		}
		return obj, nil
	}
	return nil, diag.SyntaxError(diag.SyntaxUndefinedName, "undefined name %q", name)
}

// Store binds name to val in the current directory, or rebinds an
// existing local of the same name first if one is open (spec §4.8:
// STO against a local updates the local rather than shadowing it).
func (s *State) Store(name string, val object.Object) *diag.Error {
	addr, err := object.Put(s.Arena, val)
	if err != nil {
		return diag.ResourceError(diag.ResourceOutOfMemory, "%v", err)
	}
	if s.Locals.Set(name, addr) {
		return nil
	}
	s.Dir.Store(name, addr)
	return nil
}

// RunBody runs a program body in sequence. Each element is evaluated
// with EVAL semantics (spec §4.6: literals, including nested programs,
// push themselves) rather than EXEC semantics, so a quoted program
// encountered in the runstream lands on the stack instead of running
// immediately. This is also Exec's workhorse for Program objects,
// where the unconditional run is the whole point of EXEC.
func (s *State) RunBody(p object.Program) *diag.Error {
	for _, o := range p.Body {
		if err := s.Eval(o); err != nil {
			return err
		}
	}
	return nil
}

// Eval implements the EVAL command: every object type behaves exactly
// like Exec except Program (spec §4.2/§4.6). A bare Program literal is
// pushed, not run. A Symbol is resolved as in Exec: a Program value is
// run, any other value is pushed in the symbol's place.
func (s *State) Eval(obj object.Object) *diag.Error {
	switch v := obj.(type) {
	case object.Program:
		s.Push(v)
		return nil
	case object.Symbol:
		resolved, err := s.resolve(v.Name)
		if err != nil {
			return err
		}
		if prog, ok := resolved.(object.Program); ok {
			return s.RunBody(prog)
		}
		s.Push(resolved)
		return nil
	default:
		return s.execDefault(obj)
	}
}

// Exec implements the EXEC command. A Program is run rather than
// pushed, which is the only difference from Eval; a Symbol resolves
// exactly as in Eval (a Program value runs, any other value is
// pushed). Elements of a running body go through Eval, not Exec.
func (s *State) Exec(obj object.Object) *diag.Error {
	switch v := obj.(type) {
	case object.Program:
		return s.RunBody(v)
	case object.Symbol:
		resolved, err := s.resolve(v.Name)
		if err != nil {
			return err
		}
		if prog, ok := resolved.(object.Program); ok {
			return s.RunBody(prog)
		}
		s.Push(resolved)
		return nil
	default:
		return s.execDefault(obj)
	}
}

// execDefault is the shared path for every object that EVAL and EXEC
// treat identically: composite control-flow objects run immediately,
// Commands dispatch to their handler, everything else is a literal.
func (s *State) execDefault(obj object.Object) *diag.Error {
	if err := s.Poll(); err != nil {
		return err
	}
	if handled, err := control.Run(s, obj); handled {
		return err
	}
	if cmd, ok := obj.(object.Command); ok {
		if s.trace.Enabled() {
			s.trace.Point(cmd.Name)
		}
		return s.dispatch(cmd.Name)
	}
	s.Push(obj)
	return nil
}
