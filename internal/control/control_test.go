package control

import (
	"testing"

	"rpl/internal/diag"
	"rpl/internal/numeric"
	"rpl/internal/object"
)

// fakeRunner is a minimal Runner backed by a plain slice stack and no
// locals storage beyond a map, enough to exercise the loop/branch logic
// without pulling in the evaluator.
type fakeRunner struct {
	stack []object.Object
	run   func(object.Program) *diag.Error
	binds map[string]object.Object
}

func newFakeRunner() *fakeRunner { return &fakeRunner{binds: map[string]object.Object{}} }

func (f *fakeRunner) Push(obj object.Object)             { f.stack = append(f.stack, obj) }
func (f *fakeRunner) PushFrame()                         {}
func (f *fakeRunner) PopFrame()                           {}
func (f *fakeRunner) Precision() int                      { return 16 }
func (f *fakeRunner) Poll() *diag.Error                   { return nil }
func (f *fakeRunner) BindLocal(name string, v object.Object) *diag.Error {
	f.binds[name] = v
	return nil
}

func (f *fakeRunner) Pop() (object.Object, *diag.Error) {
	if len(f.stack) == 0 {
		return nil, diag.ResourceError(diag.ResourceStackUnderflow, "stack underflow")
	}
	v := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return v, nil
}

func (f *fakeRunner) RunBody(p object.Program) *diag.Error {
	for _, obj := range p.Body {
		if inc, ok := obj.(incr); ok {
			*inc.n++
			continue
		}
		if cmd, ok := obj.(object.Command); ok {
			if err := f.execCommand(cmd.Name); err != nil {
				return err
			}
			continue
		}
		if handled, err := Run(f, obj); handled {
			if err != nil {
				return err
			}
			continue
		}
		f.Push(obj)
	}
	return nil
}

func (f *fakeRunner) execCommand(name string) *diag.Error {
	switch name {
	case "DUP":
		v, err := f.Pop()
		if err != nil {
			return err
		}
		f.Push(v)
		f.Push(v)
	case "1+":
		v, err := f.Pop()
		if err != nil {
			return err
		}
		sum, serr := object.Add(v, intObj(1), f.Precision())
		if serr != nil {
			return serr
		}
		f.Push(sum)
	case ">1000":
		v, err := f.Pop()
		if err != nil {
			return err
		}
		cmp, cerr := object.Compare(v, intObj(1000), f.Precision())
		if cerr != nil {
			return cerr
		}
		f.Push(boolObj(cmp > 0))
	}
	return nil
}

func intObj(n int64) object.Object { return object.Integer{V: numeric.SmallInt(n)} }
func boolObj(b bool) object.Object {
	if b {
		return intObj(1)
	}
	return intObj(0)
}

func TestForLoopRunsExactCount(t *testing.T) {
	r := newFakeRunner()
	r.Push(intObj(1))
	r.Push(intObj(5))
	var count int
	f := object.ForLoop{Name: "I", Body: object.Program{Body: []object.Object{countingFn(&count)}}}
	if err := runForLoop(r, f); err != nil {
		t.Fatalf("runForLoop: %v", err)
	}
	if count != 5 {
		t.Fatalf("body ran %d times, want 5", count)
	}
}

func TestWhileFalseRunsZero(t *testing.T) {
	r := newFakeRunner()
	var count int
	w := object.WhileRepeat{
		Cond: object.Program{Body: []object.Object{intObj(0)}},
		Body: object.Program{Body: []object.Object{countingFn(&count)}},
	}
	if err := runWhileRepeat(r, w); err != nil {
		t.Fatalf("runWhileRepeat: %v", err)
	}
	if count != 0 {
		t.Fatalf("body ran %d times, want 0", count)
	}
}

func TestDoUntilRunsAtLeastOnce(t *testing.T) {
	r := newFakeRunner()
	var count int
	d := object.DoUntil{
		Body: object.Program{Body: []object.Object{countingFn(&count)}},
		Cond: object.Program{Body: []object.Object{intObj(1)}},
	}
	if err := runDoUntil(r, d); err != nil {
		t.Fatalf("runDoUntil: %v", err)
	}
	if count != 1 {
		t.Fatalf("body ran %d times, want 1", count)
	}
}

// countingFn returns a fake program element, incr, that fakeRunner.RunBody
// recognizes by type assertion and handles by incrementing the counter.
// incr reports TagCommand so it satisfies object.Object without object
// depending on the test helpers.
type incr struct{ n *int }

func (incr) Tag() object.Tag { return object.TagCommand }

func countingFn(n *int) object.Object { return incr{n} }
