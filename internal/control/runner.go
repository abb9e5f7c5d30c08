// Package control implements the five inline control-flow constructs
// (DO/UNTIL, WHILE/REPEAT, START/NEXT·STEP, FOR/NEXT·STEP, IF/THEN/ELSE).
// It depends only on object and diag, never on eval: the evaluator
// implements Runner and passes itself in, so control has no import
// cycle back to the package that dispatches EVAL/EXEC.
package control

import (
	"rpl/internal/diag"
	"rpl/internal/object"
)

// Runner is the slice of the evaluator that a control construct needs:
// operand stack access, sub-program execution, local-variable framing
// and cooperative interrupt polling (spec §5's every-iteration check).
type Runner interface {
	Push(obj object.Object)
	Pop() (object.Object, *diag.Error)
	RunBody(prog object.Program) *diag.Error
	PushFrame()
	PopFrame()
	BindLocal(name string, val object.Object) *diag.Error
	Precision() int
	Poll() *diag.Error
}

// Run dispatches obj to its construct-specific executor. Every composite
// control-flow object executes immediately on EVAL (spec §4.6: it is
// inline control flow inside a running program, not inert data), so
// the evaluator calls this directly from its EVAL/EXEC dispatch.
func Run(r Runner, obj object.Object) (bool, *diag.Error) {
	switch v := obj.(type) {
	case object.DoUntil:
		return true, runDoUntil(r, v)
	case object.WhileRepeat:
		return true, runWhileRepeat(r, v)
	case object.StartLoop:
		return true, runStartLoop(r, v)
	case object.ForLoop:
		return true, runForLoop(r, v)
	case object.IfThenElse:
		return true, runIfThenElse(r, v)
	default:
		return false, nil
	}
}
