package eval

import (
	"rpl/internal/diag"
	"rpl/internal/numeric"
	"rpl/internal/object"
	"rpl/internal/settings"
)

// commands maps a Command object's Name to its handler. Keeping this
// table in eval (rather than object) is what lets object stay free of
// an import cycle back to the evaluator (spec §4.6's "the engine
// resolves a command name to a handler at EXEC time").
var commands map[string]func(*State) *diag.Error

func init() {
	commands = map[string]func(*State) *diag.Error{
		"+":         binaryArith(object.Add),
		"-":         binaryArith(object.Sub),
		"*":         binaryArith(object.Mul),
		"/":         binaryArith(object.Div),
		"NEG":       unaryArith(object.Negate),
		"DUP":       cmdDup,
		"DUP2":      cmdDup2,
		"DROP":      cmdDrop,
		"SWAP":      cmdSwap,
		"OVER":      cmdOver,
		"ROT":       cmdRot,
		"DEPTH":     cmdDepth,
		"CLEAR":     cmdClear,
		"==":        comparison(func(c int) bool { return c == 0 }),
		"<>":        comparison(func(c int) bool { return c != 0 }),
		"<":         comparison(func(c int) bool { return c < 0 }),
		">":         comparison(func(c int) bool { return c > 0 }),
		"<=":        comparison(func(c int) bool { return c <= 0 }),
		">=":        comparison(func(c int) bool { return c >= 0 }),
		"AND":       logical(func(a, b bool) bool { return a && b }),
		"OR":        logical(func(a, b bool) bool { return a || b }),
		"NOT":       cmdNot,
		"STO":       cmdSto,
		"RCL":       cmdRcl,
		"PURGE":     cmdPurge,
		"EVAL":      cmdEval,
		"EXEC":      cmdExec,
		"PRECISION": cmdPrecision,
		"STD":       displayModeCmd(settings.Std),
		"FIX":       displayModeCmd(settings.Fix),
		"SCI":       displayModeCmd(settings.Sci),
		"ENG":       displayModeCmd(settings.Eng),
		"SIG":       displayModeCmd(settings.Sig),
	}
}

func (s *State) dispatch(name string) *diag.Error {
	fn, ok := commands[name]
	if !ok {
		return diag.SyntaxError(diag.SyntaxUndefinedName, "undefined command %q", name)
	}
	return fn(s)
}

func binaryArith(op func(a, b object.Object, precision int) (object.Object, *diag.Error)) func(*State) *diag.Error {
	return func(s *State) *diag.Error {
		b, err := s.Pop()
		if err != nil {
			return err
		}
		a, err := s.Pop()
		if err != nil {
			return err
		}
		result, aerr := op(a, b, s.Precision())
		if aerr != nil {
			return aerr
		}
		if d, ok := result.(object.Decimal); ok && d.V.IsInf() && s.Settings.InfinityDisabled {
			return diag.ArithmeticError(diag.ArithInfinityDisabled, "infinite result with infinities disabled")
		}
		s.Push(result)
		return nil
	}
}

func unaryArith(op func(a object.Object) (object.Object, *diag.Error)) func(*State) *diag.Error {
	return func(s *State) *diag.Error {
		a, err := s.Pop()
		if err != nil {
			return err
		}
		result, aerr := op(a)
		if aerr != nil {
			return aerr
		}
		s.Push(result)
		return nil
	}
}

func comparison(test func(int) bool) func(*State) *diag.Error {
	return func(s *State) *diag.Error {
		b, err := s.Pop()
		if err != nil {
			return err
		}
		a, err := s.Pop()
		if err != nil {
			return err
		}
		cmp, cerr := object.Compare(a, b, s.Precision())
		if cerr != nil {
			return cerr
		}
		s.Push(boolInt(test(cmp)))
		return nil
	}
}

func logical(op func(a, b bool) bool) func(*State) *diag.Error {
	return func(s *State) *diag.Error {
		b, err := s.Pop()
		if err != nil {
			return err
		}
		a, err := s.Pop()
		if err != nil {
			return err
		}
		at, terr := object.AsTruth(a)
		if terr != nil {
			return terr
		}
		bt, terr := object.AsTruth(b)
		if terr != nil {
			return terr
		}
		s.Push(boolInt(op(at, bt)))
		return nil
	}
}

func cmdNot(s *State) *diag.Error {
	a, err := s.Pop()
	if err != nil {
		return err
	}
	at, terr := object.AsTruth(a)
	if terr != nil {
		return terr
	}
	s.Push(boolInt(!at))
	return nil
}

func boolInt(b bool) object.Object {
	if b {
		return object.Integer{V: numeric.SmallInt(1)}
	}
	return object.Integer{V: numeric.SmallInt(0)}
}

func cmdDup(s *State) *diag.Error {
	v, err := s.Pop()
	if err != nil {
		return err
	}
	s.Push(v)
	s.Push(v)
	return nil
}

func cmdDup2(s *State) *diag.Error {
	b, err := s.Pop()
	if err != nil {
		return err
	}
	a, err := s.Pop()
	if err != nil {
		return err
	}
	s.Push(a)
	s.Push(b)
	s.Push(a)
	s.Push(b)
	return nil
}

func cmdDrop(s *State) *diag.Error {
	_, err := s.Pop()
	return err
}

func cmdSwap(s *State) *diag.Error {
	b, err := s.Pop()
	if err != nil {
		return err
	}
	a, err := s.Pop()
	if err != nil {
		return err
	}
	s.Push(b)
	s.Push(a)
	return nil
}

func cmdOver(s *State) *diag.Error {
	v, err := s.Peek(1)
	if err != nil {
		return err
	}
	s.Push(v)
	return nil
}

func cmdRot(s *State) *diag.Error {
	c, err := s.Pop()
	if err != nil {
		return err
	}
	b, err := s.Pop()
	if err != nil {
		return err
	}
	a, err := s.Pop()
	if err != nil {
		return err
	}
	s.Push(b)
	s.Push(c)
	s.Push(a)
	return nil
}

func cmdDepth(s *State) *diag.Error {
	s.Push(object.Integer{V: numeric.SmallInt(int64(s.Depth()))})
	return nil
}

func cmdClear(s *State) *diag.Error {
	s.stack = s.stack[:0]
	return nil
}

func nameOf(obj object.Object) (string, *diag.Error) {
	switch v := obj.(type) {
	case object.Symbol:
		return v.Name, nil
	case object.Text:
		return v.S, nil
	case object.Expression:
		// A quoted bare name, 'X', parses as a single-Symbol Expression
		// rather than a Symbol (which would auto-resolve on EXEC); STO
		// and friends accept it as the name form spec §6's state files use.
		if len(v.Items) == 1 {
			if sym, ok := v.Items[0].(object.Symbol); ok {
				return sym.Name, nil
			}
		}
		return "", diag.TypeError(diag.TypeWrongOperand, "%s is not a name", object.Render(obj, settings.Default()))
	default:
		return "", diag.TypeError(diag.TypeWrongOperand, "%s is not a name", object.Render(obj, settings.Default()))
	}
}

func cmdSto(s *State) *diag.Error {
	nameObj, err := s.Pop()
	if err != nil {
		return err
	}
	name, nerr := nameOf(nameObj)
	if nerr != nil {
		return nerr
	}
	val, err := s.Pop()
	if err != nil {
		return err
	}
	return s.Store(name, val)
}

func cmdRcl(s *State) *diag.Error {
	nameObj, err := s.Pop()
	if err != nil {
		return err
	}
	name, nerr := nameOf(nameObj)
	if nerr != nil {
		return nerr
	}
	val, rerr := s.resolve(name)
	if rerr != nil {
		return rerr
	}
	s.Push(val)
	return nil
}

func cmdPurge(s *State) *diag.Error {
	nameObj, err := s.Pop()
	if err != nil {
		return err
	}
	name, nerr := nameOf(nameObj)
	if nerr != nil {
		return nerr
	}
	s.Dir.Purge(name)
	return nil
}

func cmdEval(s *State) *diag.Error {
	v, err := s.Pop()
	if err != nil {
		return err
	}
	return s.Eval(v)
}

func cmdExec(s *State) *diag.Error {
	v, err := s.Pop()
	if err != nil {
		return err
	}
	return s.Exec(v)
}

func smallIntValue(obj object.Object) (int64, bool) {
	i, ok := obj.(object.Integer)
	if !ok {
		return 0, false
	}
	return i.V.ToBigInt().Int64()
}

func cmdPrecision(s *State) *diag.Error {
	v, err := s.Pop()
	if err != nil {
		return err
	}
	n, ok := smallIntValue(v)
	if !ok {
		return diag.TypeError(diag.TypeWrongOperand, "expected an integer precision")
	}
	s.Settings.Precision = int(n)
	return nil
}

// displayModeCmd builds the handler for a display-mode command (STD,
// FIX, SCI, ENG, SIG), each of which pops a digit count and switches
// the active settings' DisplayMode and DisplayDigits together.
func displayModeCmd(mode settings.DisplayMode) func(*State) *diag.Error {
	return func(s *State) *diag.Error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		n, ok := smallIntValue(v)
		if !ok {
			return diag.TypeError(diag.TypeWrongOperand, "expected a digit count")
		}
		s.Settings.DisplayMode = mode
		s.Settings.DisplayDigits = int(n)
		return nil
	}
}
