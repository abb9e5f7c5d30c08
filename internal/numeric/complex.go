package numeric

import "rpl/internal/decimal"

// ComplexForm selects how a Complex value is stored and rendered (ground:
// spec §3's "complex (rectangular/polar)" payload and §6's `(re,im)` /
// `(mag∠angle)` text syntax).
type ComplexForm uint8

const (
	Rectangular ComplexForm = iota
	Polar
)

// Complex holds two inline decimal sub-objects interpreted either as
// (real, imaginary) or (magnitude, angle) depending on Form. All
// arithmetic below normalizes to rectangular internally and reports the
// result in the same form as its left-hand operand, matching the
// object model's sub-object layout rather than a bespoke struct.
type Complex struct {
	Form ComplexForm
	A, B decimal.Decimal
}

func (c Complex) rect(precision int) (re, im decimal.Decimal) {
	if c.Form == Rectangular {
		return c.A, c.B
	}
	re = decimal.Mul(c.A, cos(c.B, precision), precision)
	im = decimal.Mul(c.A, sin(c.B, precision), precision)
	return
}

func fromRect(re, im decimal.Decimal, form ComplexForm, precision int) Complex {
	if form == Rectangular {
		return Complex{Form: Rectangular, A: re, B: im}
	}
	return Complex{Form: Polar, A: hypot(re, im, precision), B: atan2(im, re, precision)}
}

// AddComplex returns a+b, rendered in a's form.
func AddComplex(a, b Complex, precision int) Complex {
	are, aim := a.rect(precision)
	bre, bim := b.rect(precision)
	re := decimal.Add(are, bre, precision)
	im := decimal.Add(aim, bim, precision)
	return fromRect(re, im, a.Form, precision)
}

// SubComplex returns a-b, rendered in a's form.
func SubComplex(a, b Complex, precision int) Complex {
	are, aim := a.rect(precision)
	bre, bim := b.rect(precision)
	re := decimal.Sub(are, bre, precision)
	im := decimal.Sub(aim, bim, precision)
	return fromRect(re, im, a.Form, precision)
}

// MulComplex returns a*b, rendered in a's form. Polar multiplication
// would be a plain magnitude-multiply/angle-add, but this engine always
// normalizes through rectangular coordinates so a single code path
// covers both forms and the transcendental helpers stay in one place.
func MulComplex(a, b Complex, precision int) Complex {
	are, aim := a.rect(precision)
	bre, bim := b.rect(precision)
	re := decimal.Sub(decimal.Mul(are, bre, precision), decimal.Mul(aim, bim, precision), precision)
	im := decimal.Add(decimal.Mul(are, bim, precision), decimal.Mul(aim, bre, precision), precision)
	return fromRect(re, im, a.Form, precision)
}

// DivComplex returns a/b, rendered in a's form.
func DivComplex(a, b Complex, precision int) Complex {
	are, aim := a.rect(precision)
	bre, bim := b.rect(precision)
	denom := decimal.Add(decimal.Mul(bre, bre, precision), decimal.Mul(bim, bim, precision), precision)
	reNum := decimal.Add(decimal.Mul(are, bre, precision), decimal.Mul(aim, bim, precision), precision)
	imNum := decimal.Sub(decimal.Mul(aim, bre, precision), decimal.Mul(are, bim, precision), precision)
	re := decimal.Div(reNum, denom, precision)
	im := decimal.Div(imNum, denom, precision)
	return fromRect(re, im, a.Form, precision)
}

// NegComplex returns -a.
func NegComplex(a Complex) Complex {
	return Complex{Form: a.Form, A: a.A.Negated(), B: a.B}
}

// IsZero reports whether a is the complex zero.
func (a Complex) IsZero() bool {
	re, im := a.rect(0)
	return re.IsZero() && im.IsZero()
}
