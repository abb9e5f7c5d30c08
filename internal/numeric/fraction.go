package numeric

import "rpl/internal/numeric/bignum"

// Fraction is a reduced rational number: Den is always >= 1 and
// gcd(|Num|,Den) == 1 (ground: spec §4.3, §3's "fractions are stored
// already reduced; denominator >= 1").
type Fraction struct {
	Num Integer
	Den Integer // always positive, IsSmall or bignum, never zero
}

// NewFraction builds a reduced fraction, returning ok=false (and the
// caller should demote to an Integer) when the denominator reduces to 1.
func NewFraction(num, den Integer) (Fraction, bool, error) {
	if den.IsZero() {
		return Fraction{}, false, bignum.ErrDivByZero
	}
	if den.Neg {
		num, den = Negated(num), Negated(den)
	}
	g := gcd(absInteger(num), den)
	if !g.IsZero() && !isOne(g) {
		var err error
		num, _, err = DivMod(num, g)
		if err != nil {
			return Fraction{}, false, err
		}
		den, _, err = DivMod(den, g)
		if err != nil {
			return Fraction{}, false, err
		}
	}
	if isOne(den) {
		return Fraction{Num: num}, false, nil
	}
	return Fraction{Num: num, Den: den}, true, nil
}

func absInteger(i Integer) Integer {
	r := i
	r.Neg = false
	if r.Big != nil {
		b := *r.Big
		b.Neg = false
		r.Big = &b
	}
	return r
}

func isOne(i Integer) bool {
	return !i.Neg && i.IsSmall() && i.Small == 1
}

// gcd computes the greatest common divisor of two non-negative
// Integers via the Euclidean algorithm.
func gcd(a, b Integer) Integer {
	for !b.IsZero() {
		_, r, err := DivMod(a, b)
		if err != nil {
			return SmallInt(1)
		}
		a, b = b, absInteger(r)
	}
	return a
}

// AddFraction returns a+b as a reduced fraction-or-integer pair: ok reports
// whether the result is still a proper fraction (false means result is
// demoted to an Integer, returned as Num with Den==1 implied).
func AddFraction(a, b Fraction) (Fraction, bool, error) {
	num := Add(Mul(a.Num, b.Den), Mul(b.Num, a.Den))
	den := Mul(a.Den, b.Den)
	return NewFraction(num, den)
}

// SubFraction returns a-b.
func SubFraction(a, b Fraction) (Fraction, bool, error) {
	num := Sub(Mul(a.Num, b.Den), Mul(b.Num, a.Den))
	den := Mul(a.Den, b.Den)
	return NewFraction(num, den)
}

// MulFraction returns a*b.
func MulFraction(a, b Fraction) (Fraction, bool, error) {
	return NewFraction(Mul(a.Num, b.Num), Mul(a.Den, b.Den))
}

// DivFraction returns a/b.
func DivFraction(a, b Fraction) (Fraction, bool, error) {
	if b.Num.IsZero() {
		return Fraction{}, false, bignum.ErrDivByZero
	}
	return NewFraction(Mul(a.Num, b.Den), Mul(a.Den, b.Num))
}

// NegFraction returns -a.
func NegFraction(a Fraction) Fraction {
	return Fraction{Num: Negated(a.Num), Den: a.Den}
}

// CompareFraction returns -1, 0 or +1 for a<b, a==b, a>b via
// cross-multiplication (both denominators are positive by construction).
func CompareFraction(a, b Fraction) int {
	return Compare(Mul(a.Num, b.Den), Mul(b.Num, a.Den))
}

// IsZero reports whether a is zero.
func (a Fraction) IsZero() bool { return a.Num.IsZero() }
