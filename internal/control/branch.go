package control

import (
	"rpl/internal/diag"
	"rpl/internal/object"
)

// runIfThenElse evaluates cond, then runs exactly one branch: then when
// cond is truthy, else when present and cond is falsy, nothing otherwise.
func runIfThenElse(r Runner, v object.IfThenElse) *diag.Error {
	if err := r.Poll(); err != nil {
		return err
	}
	if err := r.RunBody(v.Cond); err != nil {
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
	if truthy {
		return r.RunBody(v.Then)
	}
	if v.HasElse {
		return r.RunBody(v.Else)
	}
	return nil
}
