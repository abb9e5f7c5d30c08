package object

import (
	"rpl/internal/decimal"
	"rpl/internal/numeric"
)

// Object is anything the engine can push on the operand stack, store in
// a directory, or embed as an inline sub-object. Per spec §9's explicit
// allowance ("a single enum-indexed table of operation function
// pointers, or equivalently a tagged-variant with a match per
// operation"), this runtime uses the tagged-variant form: Go's type
// system gives each concrete type its own methods instead of an array
// of function pointers, while Tag() still gives the dense, ordered
// index spec §4.2's category range-checks need.
type Object interface {
	Tag() Tag
}

// Integer is a small/bignum integer literal.
type Integer struct{ V numeric.Integer }

// Tag reports the correct signed tag, since sign and magnitude-class
// both live in the tag rather than the payload (spec §4.3).
func (i Integer) Tag() Tag {
	if i.V.IsSmall() {
		if i.V.Neg {
			return TagNegInteger
		}
		return TagPosInteger
	}
	if i.V.Neg {
		return TagNegBignum
	}
	return TagPosBignum
}

// Fraction is a reduced rational literal.
type Fraction struct{ V numeric.Fraction }

func (Fraction) Tag() Tag { return TagFraction }

// Decimal is a variable-precision decimal literal.
type Decimal struct{ V decimal.Decimal }

func (d Decimal) Tag() Tag {
	if d.V.Neg {
		return TagNegDecimal
	}
	return TagDecimal
}

// Complex is a rectangular-or-polar complex literal.
type Complex struct{ V numeric.Complex }

func (c Complex) Tag() Tag {
	if c.V.Form == numeric.Polar {
		return TagComplexPolar
	}
	return TagComplexRect
}

// Symbol is a bare identifier, used as a variable/command name.
type Symbol struct{ Name string }

func (Symbol) Tag() Tag { return TagSymbol }

// Text is a quoted string literal.
type Text struct{ S string }

func (Text) Tag() Tag { return TagText }

// Program is a « ... » sequence: EVAL pushes it, EXEC runs it; a
// Symbol whose value is a Program runs under both.
type Program struct{ Body []Object }

func (Program) Tag() Tag { return TagProgram }

// List is a { ... } sequence: EVAL pushes itself unevaluated.
type List struct{ Items []Object }

func (List) Tag() Tag { return TagList }

// Expression is a '...' algebraic sequence: EVAL and EXEC both push
// it unevaluated (symbolic).
type Expression struct{ Items []Object }

func (Expression) Tag() Tag { return TagExpression }

// DoUntil is DO body UNTIL cond END.
type DoUntil struct{ Body, Cond Program }

func (DoUntil) Tag() Tag { return TagDoUntil }

// WhileRepeat is WHILE cond REPEAT body END.
type WhileRepeat struct{ Cond, Body Program }

func (WhileRepeat) Tag() Tag { return TagWhileRepeat }

// StartLoop is START ... NEXT or START ... STEP (no bound variable).
type StartLoop struct {
	Body    Program
	HasStep bool
}

func (s StartLoop) Tag() Tag {
	if s.HasStep {
		return TagStartStep
	}
	return TagStartNext
}

// ForLoop is FOR name ... NEXT or FOR name ... STEP: the loop variable's
// name is embedded in the object itself (spec §4.7's "the name is
// embedded in the loop object").
type ForLoop struct {
	Name    string
	Body    Program
	HasStep bool
}

func (f ForLoop) Tag() Tag {
	if f.HasStep {
		return TagForStep
	}
	return TagForNext
}

// IfThenElse is IF cond THEN then-branch [ELSE else-branch] END.
type IfThenElse struct {
	Cond, Then, Else Program
	HasElse          bool
}

func (IfThenElse) Tag() Tag { return TagIfThenElse }

// Command is a built-in operation referenced by name (+, DUP, STO, ...);
// the evaluator resolves Name to a handler at EXEC time rather than
// this package owning a name->handler table, keeping object free of an
// import cycle back to eval.
type Command struct{ Name string }

func (Command) Tag() Tag { return TagCommand }
