// Package decimal implements the variable-precision, base-1000 decimal
// arithmetic engine (spec §4.4), grounded on
// _examples/original_source/src/decimal.cc. A Decimal is a sign, a
// base-10 exponent and a slice of "kigits" — 10-bit base-1000 digit
// groups, most-significant first — such that:
//
//	value = sign * 0.K0K1K2...Kn * 10^Exp
//
// where K0..Kn is the decimal digit stream formed by concatenating the
// kigits (K0 in [100,999] unless the whole mantissa is zero). This
// mirrors the original's "exponent" field exactly: it counts decimal
// digits, not kigits. Add/Sub/Mul/Div (arith.go) unpack the kigits into
// single decimal digits and realign operands digit by digit.
package decimal

// Kigit is a base-1000 digit group. Values 0-999 are ordinary digits;
// 1000 and above are sentinels (infinity, NaN) per spec §3.
type Kigit uint16

const (
	// KigitInfinity is the sentinel mantissa value for ±Infinity.
	KigitInfinity Kigit = 1000
	// KigitNaN is the sentinel mantissa value for NaN.
	KigitNaN Kigit = 1001
)

// Decimal is an immutable variable-precision decimal value. The zero
// value is canonical zero.
type Decimal struct {
	Neg    bool
	Exp    int
	Kigits []Kigit // most-significant first, trailing zero kigits stripped
}

// Zero returns the canonical zero value.
func Zero() Decimal { return Decimal{} }

// Infinity returns signed infinity.
func Infinity(neg bool) Decimal {
	return Decimal{Neg: neg, Exp: 0, Kigits: []Kigit{KigitInfinity}}
}

// NaN returns the not-a-number value. By convention it carries no sign.
func NaN() Decimal {
	return Decimal{Kigits: []Kigit{KigitNaN}}
}

// IsZero reports whether d is (positive or negative) zero.
func (d Decimal) IsZero() bool { return len(d.Kigits) == 0 }

// IsInf reports whether d is ±Infinity.
func (d Decimal) IsInf() bool {
	return len(d.Kigits) > 0 && d.Kigits[0] == KigitInfinity
}

// IsNaN reports whether d is NaN.
func (d Decimal) IsNaN() bool {
	return len(d.Kigits) > 0 && d.Kigits[0] == KigitNaN
}

// IsOne reports whether d is exactly 1.
func (d Decimal) IsOne() bool {
	return !d.Neg && d.Exp == 1 && len(d.Kigits) == 1 && d.Kigits[0] == 100
}

// IsNegative reports whether d is strictly negative. A negative zero
// (Neg set, no kigits, as Mul and Div can return) reports false.
func (d Decimal) IsNegative() bool {
	return d.Neg && len(d.Kigits) != 0
}

// Class enumerates the IEEE-754-style classes spec §4.4 requires.
type Class uint8

const (
	ClassPosZero Class = iota
	ClassNegZero
	ClassPosSubnormal
	ClassNegSubnormal
	ClassPosNormal
	ClassNegNormal
	ClassPosInfinity
	ClassNegInfinity
	ClassNaN
)

// Fpclass reports d's floating-point class (ground: decimal::fpclass,
// original_source/src/decimal.cc:605).
func (d Decimal) Fpclass() Class {
	if len(d.Kigits) == 0 {
		if d.Neg {
			return ClassNegZero
		}
		return ClassPosZero
	}
	k0 := d.Kigits[0]
	if k0 >= 1000 {
		if k0 == KigitInfinity {
			if d.Neg {
				return ClassNegInfinity
			}
			return ClassPosInfinity
		}
		return ClassNaN
	}
	if k0 < 100 {
		if d.Neg {
			return ClassNegSubnormal
		}
		return ClassPosSubnormal
	}
	if d.Neg {
		return ClassNegNormal
	}
	return ClassPosNormal
}

// Negated returns the arithmetic negation of d: flip the sign, keep the
// payload untouched (ground: decimal::neg, original_source decimal.cc:843).
func (d Decimal) Negated() Decimal {
	if d.IsZero() {
		return d
	}
	r := d
	r.Neg = !d.Neg
	return r
}

// kigitAt returns the kigit at index i, or 0 past the end — the
// zero-extension Compare uses when operand widths differ.
func kigitAt(ks []Kigit, i int) Kigit {
	if i < 0 || i >= len(ks) {
		return 0
	}
	return ks[i]
}
