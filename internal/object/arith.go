package object

import (
	"rpl/internal/decimal"
	"rpl/internal/diag"
	"rpl/internal/numeric"
	"rpl/internal/settings"
)

// rank orders the numeric types for promotion (spec §4.3: "numeric
// promotion rules unify mixed-type arithmetic"); -1 means not numeric.
func rank(o Object) int {
	switch o.(type) {
	case Integer:
		return 0
	case Fraction:
		return 1
	case Decimal:
		return 2
	case Complex:
		return 3
	default:
		return -1
	}
}

func notNumeric(a, b Object) *diag.Error {
	bad := a
	if rank(a) >= 0 {
		bad = b
	}
	return diag.TypeError(diag.TypeWrongOperand, "%s is not a number", Render(bad, settings.Default()))
}

func toFraction(o Object) numeric.Fraction {
	switch v := o.(type) {
	case Integer:
		return numeric.Fraction{Num: v.V, Den: numeric.SmallInt(1)}
	case Fraction:
		return v.V
	default:
		return numeric.Fraction{Den: numeric.SmallInt(1)}
	}
}

func toDecimal(o Object, precision int) decimal.Decimal {
	switch v := o.(type) {
	case Integer:
		d, err := decimal.Parse(v.V.String(), settings.Default())
		if err != nil {
			return decimal.Zero()
		}
		return d
	case Fraction:
		num := toDecimal(Integer{V: v.V.Num}, precision)
		den := toDecimal(Integer{V: v.V.Den}, precision)
		return decimal.Div(num, den, precision)
	case Decimal:
		return v.V
	default:
		return decimal.Zero()
	}
}

func toComplex(o Object, precision int) numeric.Complex {
	if c, ok := o.(Complex); ok {
		return c.V
	}
	return numeric.Complex{Form: numeric.Rectangular, A: toDecimal(o, precision), B: decimal.Zero()}
}

// Add returns a+b, promoting to the wider operand's numeric category.
func Add(a, b Object, precision int) (Object, *diag.Error) {
	ra, rb := rank(a), rank(b)
	if ra < 0 || rb < 0 {
		return nil, notNumeric(a, b)
	}
	switch max(ra, rb) {
	case 0:
		return Integer{V: numeric.Add(a.(Integer).V, b.(Integer).V)}, nil
	case 1:
		sum, ok, err := numeric.AddFraction(toFraction(a), toFraction(b))
		if err != nil {
			return nil, diag.ArithmeticError(diag.ArithDomainError, "%v", err)
		}
		if !ok {
			return Integer{V: sum.Num}, nil
		}
		return Fraction{V: sum}, nil
	case 2:
		return Decimal{V: decimal.Add(toDecimal(a, precision), toDecimal(b, precision), precision)}, nil
	default:
		return Complex{V: numeric.AddComplex(toComplex(a, precision), toComplex(b, precision), precision)}, nil
	}
}

// Sub returns a-b.
func Sub(a, b Object, precision int) (Object, *diag.Error) {
	ra, rb := rank(a), rank(b)
	if ra < 0 || rb < 0 {
		return nil, notNumeric(a, b)
	}
	switch max(ra, rb) {
	case 0:
		return Integer{V: numeric.Sub(a.(Integer).V, b.(Integer).V)}, nil
	case 1:
		diff, ok, err := numeric.SubFraction(toFraction(a), toFraction(b))
		if err != nil {
			return nil, diag.ArithmeticError(diag.ArithDomainError, "%v", err)
		}
		if !ok {
			return Integer{V: diff.Num}, nil
		}
		return Fraction{V: diff}, nil
	case 2:
		return Decimal{V: decimal.Sub(toDecimal(a, precision), toDecimal(b, precision), precision)}, nil
	default:
		return Complex{V: numeric.SubComplex(toComplex(a, precision), toComplex(b, precision), precision)}, nil
	}
}

// Mul returns a*b.
func Mul(a, b Object, precision int) (Object, *diag.Error) {
	ra, rb := rank(a), rank(b)
	if ra < 0 || rb < 0 {
		return nil, notNumeric(a, b)
	}
	switch max(ra, rb) {
	case 0:
		return Integer{V: numeric.Mul(a.(Integer).V, b.(Integer).V)}, nil
	case 1:
		prod, ok, err := numeric.MulFraction(toFraction(a), toFraction(b))
		if err != nil {
			return nil, diag.ArithmeticError(diag.ArithDomainError, "%v", err)
		}
		if !ok {
			return Integer{V: prod.Num}, nil
		}
		return Fraction{V: prod}, nil
	case 2:
		return Decimal{V: decimal.Mul(toDecimal(a, precision), toDecimal(b, precision), precision)}, nil
	default:
		return Complex{V: numeric.MulComplex(toComplex(a, precision), toComplex(b, precision), precision)}, nil
	}
}

// Div returns a/b. Integer and fraction operands produce an exact
// fraction (demoted to integer when it reduces evenly), matching RPL's
// "1 3 /" giving a fraction rather than a rounded decimal.
func Div(a, b Object, precision int) (Object, *diag.Error) {
	ra, rb := rank(a), rank(b)
	if ra < 0 || rb < 0 {
		return nil, notNumeric(a, b)
	}
	switch max(ra, rb) {
	case 0, 1:
		bf := toFraction(b)
		if bf.IsZero() {
			return nil, diag.ArithmeticError(diag.ArithDivideByZero, "division by zero")
		}
		q, ok, err := numeric.DivFraction(toFraction(a), bf)
		if err != nil {
			return nil, diag.ArithmeticError(diag.ArithDivideByZero, "%v", err)
		}
		if !ok {
			return Integer{V: q.Num}, nil
		}
		return Fraction{V: q}, nil
	case 2:
		return Decimal{V: decimal.Div(toDecimal(a, precision), toDecimal(b, precision), precision)}, nil
	default:
		bc := toComplex(b, precision)
		if bc.IsZero() {
			return nil, diag.ArithmeticError(diag.ArithDivideByZero, "division by zero")
		}
		return Complex{V: numeric.DivComplex(toComplex(a, precision), bc, precision)}, nil
	}
}

// Negate returns -a.
func Negate(a Object) (Object, *diag.Error) {
	switch v := a.(type) {
	case Integer:
		return Integer{V: numeric.Negated(v.V)}, nil
	case Fraction:
		return Fraction{V: numeric.NegFraction(v.V)}, nil
	case Decimal:
		return Decimal{V: v.V.Negated()}, nil
	case Complex:
		return Complex{V: numeric.NegComplex(v.V)}, nil
	default:
		return nil, diag.TypeError(diag.TypeWrongOperand, "%s cannot be negated", Render(a, settings.Default()))
	}
}

// Compare orders two real (non-complex) numeric objects: -1/0/+1.
func Compare(a, b Object, precision int) (int, *diag.Error) {
	ra, rb := rank(a), rank(b)
	if ra < 0 || rb < 0 {
		return 0, notNumeric(a, b)
	}
	if ra == 3 || rb == 3 {
		return 0, diag.TypeError(diag.TypeNotReal, "complex values are not ordered")
	}
	if ra <= 1 && rb <= 1 {
		return numeric.CompareFraction(toFraction(a), toFraction(b)), nil
	}
	return decimal.Compare(toDecimal(a, precision), toDecimal(b, precision)), nil
}

// Equal reports structural equality, usable for any object pair
// (numbers compare by value across categories; other types by
// identical rendering, which is exact for symbols, text and programs).
func Equal(a, b Object, precision int) bool {
	ra, rb := rank(a), rank(b)
	if ra >= 0 && rb >= 0 {
		if ra == 3 || rb == 3 {
			diff := numeric.SubComplex(toComplex(a, precision), toComplex(b, precision), precision)
			return diff.IsZero()
		}
		cmp, err := Compare(a, b, precision)
		return err == nil && cmp == 0
	}
	return Render(a, settings.Default()) == Render(b, settings.Default())
}
