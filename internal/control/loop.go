package control

import (
	"rpl/internal/diag"
	"rpl/internal/numeric"
	"rpl/internal/object"
)

// runDoUntil runs body at least once, then re-evaluates cond and stops
// the first time it is true (spec §8 edge case: an always-true cond
// still runs the body exactly once).
func runDoUntil(r Runner, d object.DoUntil) *diag.Error {
	for {
		if err := r.Poll(); err != nil {
			return err
		}
		if err := r.RunBody(d.Body); err != nil {
			return err
		}
		if err := r.RunBody(d.Cond); err != nil {
			return err
		}
		cond, err := r.Pop()
		if err != nil {
			return err
		}
		done, terr := object.AsTruth(cond)
		if terr != nil {
			return terr
		}
		if done {
			return nil
		}
	}
}

// runWhileRepeat evaluates cond before every iteration and runs zero
// bodies when it is false on the first check.
func runWhileRepeat(r Runner, w object.WhileRepeat) *diag.Error {
	for {
		if err := r.Poll(); err != nil {
			return err
		}
		if err := r.RunBody(w.Cond); err != nil {
			return err
		}
		cond, err := r.Pop()
		if err != nil {
			return err
		}
		truthy, terr := object.AsTruth(cond)
		if terr != nil {
			return terr
		}
		if !truthy {
			return nil
		}
		if err := r.RunBody(w.Body); err != nil {
			return err
		}
	}
}

// loopBounds pops the end and start bounds off the stack, matching RPL's
// "start end START"/"start end FOR name" stack order where end is on
// top (pushed last).
func loopBounds(r Runner) (start, end object.Object, err *diag.Error) {
	end, err = r.Pop()
	if err != nil {
		return nil, nil, err
	}
	start, err = r.Pop()
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func oneStep() object.Object { return object.Integer{V: numeric.SmallInt(1)} }

// runStartLoop runs body once per integer step from start to end
// inclusive; exactly max(0,end-start+1) bodies when step stays +1.
func runStartLoop(r Runner, s object.StartLoop) *diag.Error {
	start, end, err := loopBounds(r)
	if err != nil {
		return err
	}
	i := start
	dir := 1
	for {
		if err := r.Poll(); err != nil {
			return err
		}
		cmp, cerr := object.Compare(i, end, r.Precision())
		if cerr != nil {
			return cerr
		}
		if dir >= 0 && cmp > 0 {
			return nil
		}
		if dir < 0 && cmp < 0 {
			return nil
		}
		if err := r.RunBody(s.Body); err != nil {
			return err
		}
		step := oneStep()
		if s.HasStep {
			step, err = r.Pop()
			if err != nil {
				return err
			}
			if sign, serr := object.Compare(step, object.Integer{}, r.Precision()); serr == nil && sign < 0 {
				dir = -1
			} else {
				dir = 1
			}
		}
		i, err = object.Add(i, step, r.Precision())
		if err != nil {
			return err
		}
	}
}

// runForLoop is runStartLoop plus a freshly bound local holding the
// current loop value for the duration of each body execution (spec
// §4.7: "the name is embedded in the loop object").
func runForLoop(r Runner, f object.ForLoop) *diag.Error {
	start, end, err := loopBounds(r)
	if err != nil {
		return err
	}
	i := start
	dir := 1
	for {
		if err := r.Poll(); err != nil {
			return err
		}
		cmp, cerr := object.Compare(i, end, r.Precision())
		if cerr != nil {
			return cerr
		}
		if dir >= 0 && cmp > 0 {
			return nil
		}
		if dir < 0 && cmp < 0 {
			return nil
		}
		r.PushFrame()
		if berr := r.BindLocal(f.Name, i); berr != nil {
			r.PopFrame()
			return berr
		}
		berr := r.RunBody(f.Body)
		r.PopFrame()
		if berr != nil {
			return berr
		}
		step := oneStep()
		if f.HasStep {
			step, err = r.Pop()
			if err != nil {
				return err
			}
			if sign, serr := object.Compare(step, object.Integer{}, r.Precision()); serr == nil && sign < 0 {
				dir = -1
			} else {
				dir = 1
			}
		}
		i, err = object.Add(i, step, r.Precision())
		if err != nil {
			return err
		}
	}
}
