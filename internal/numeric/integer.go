// Package numeric implements the small-integer/bignum/fraction/complex
// number tower (spec §4.3) on top of internal/numeric/bignum and
// internal/decimal. Small integers carry a machine-word magnitude with
// the sign folded into the caller's type tag (ground: spec §3's "small
// integer (signed sign encoded in the tag)"); arithmetic promotes to
// bignum.BigInt whenever a machine-word operation would overflow.
package numeric

import (
	"math/bits"

	"rpl/internal/numeric/bignum"
)

// Integer is a signed arbitrary-precision integer that stays in the
// machine-word fast path (Big == nil) until an operation overflows it.
type Integer struct {
	Neg   bool
	Small uint64 // valid only when Big == nil
	Big   *bignum.BigInt
}

// SmallInt builds an Integer from a machine int64.
func SmallInt(v int64) Integer {
	if v < 0 {
		return Integer{Neg: true, Small: uint64(-v)}
	}
	return Integer{Small: uint64(v)}
}

// FromBigInt normalizes a bignum.BigInt into an Integer, demoting back
// to the small-word form when it fits.
func FromBigInt(b bignum.BigInt) Integer {
	if b.IsZero() {
		return Integer{}
	}
	if u, ok := smallFromLimbs(b); ok {
		return Integer{Neg: b.Neg, Small: u}
	}
	bc := b
	return Integer{Neg: b.Neg, Big: &bc}
}

func smallFromLimbs(b bignum.BigInt) (uint64, bool) {
	limbs := b.Abs().Limbs
	switch len(limbs) {
	case 0:
		return 0, true
	case 1:
		return uint64(limbs[0]), true
	case 2:
		return uint64(limbs[0]) | uint64(limbs[1])<<32, true
	default:
		return 0, false
	}
}

// IsZero reports whether i is zero.
func (i Integer) IsZero() bool {
	if i.Big != nil {
		return i.Big.IsZero()
	}
	return i.Small == 0
}

// IsSmall reports whether i is still in the machine-word fast path.
func (i Integer) IsSmall() bool { return i.Big == nil }

// ToBigInt widens i to a bignum.BigInt, regardless of whether it is
// currently small.
func (i Integer) ToBigInt() bignum.BigInt {
	if i.Big != nil {
		return *i.Big
	}
	lo := uint32(i.Small)
	hi := uint32(i.Small >> 32)
	limbs := []uint32{lo}
	if hi != 0 {
		limbs = append(limbs, hi)
	}
	return bignum.BigInt{Neg: i.Neg, Limbs: limbs}
}

// Add returns a+b, promoting to bignum on machine-word overflow (ground:
// spec §4.3's promotion rule).
func Add(a, b Integer) Integer {
	if a.IsSmall() && b.IsSmall() {
		if sum, neg, ok := addSmall(a.Neg, a.Small, b.Neg, b.Small); ok {
			return Integer{Neg: neg, Small: sum}
		}
	}
	sum, err := bignum.IntAdd(a.ToBigInt(), b.ToBigInt())
	if err != nil {
		return FromBigInt(a.ToBigInt())
	}
	return FromBigInt(sum)
}

// Sub returns a-b.
func Sub(a, b Integer) Integer { return Add(a, Negated(b)) }

// Negated returns -i.
func Negated(i Integer) Integer {
	if i.IsZero() {
		return i
	}
	r := i
	r.Neg = !i.Neg
	if r.Big != nil {
		b := r.Big.Negated()
		r.Big = &b
	}
	return r
}

// Mul returns a*b, promoting to bignum on machine-word overflow.
func Mul(a, b Integer) Integer {
	if a.IsSmall() && b.IsSmall() {
		hi, lo := bits.Mul64(a.Small, b.Small)
		if hi == 0 {
			return Integer{Neg: a.Neg != b.Neg, Small: lo}
		}
	}
	prod, err := bignum.IntMul(a.ToBigInt(), b.ToBigInt())
	if err != nil {
		return FromBigInt(a.ToBigInt())
	}
	return FromBigInt(prod)
}

// DivMod returns the truncating quotient and remainder of a/b.
func DivMod(a, b Integer) (q, r Integer, err error) {
	if a.IsSmall() && b.IsSmall() && b.Small != 0 {
		qs := a.Small / b.Small
		rs := a.Small % b.Small
		return Integer{Neg: a.Neg != b.Neg, Small: qs}, Integer{Neg: a.Neg, Small: rs}, nil
	}
	bq, br, derr := bignum.IntDivMod(a.ToBigInt(), b.ToBigInt())
	if derr != nil {
		return Integer{}, Integer{}, derr
	}
	return FromBigInt(bq), FromBigInt(br), nil
}

// Compare returns -1, 0 or +1 for a<b, a==b, a>b.
func Compare(a, b Integer) int {
	if a.IsSmall() && b.IsSmall() {
		if a.Neg != b.Neg {
			if a.Small == 0 && b.Small == 0 {
				return 0
			}
			if a.Neg {
				return -1
			}
			return 1
		}
		sign := 1
		if a.Neg {
			sign = -1
		}
		switch {
		case a.Small < b.Small:
			return -sign
		case a.Small > b.Small:
			return sign
		default:
			return 0
		}
	}
	return a.ToBigInt().Cmp(b.ToBigInt())
}

// addSmall adds two signed magnitudes in the machine-word domain,
// returning ok=false if the magnitude addition/subtraction itself would
// overflow uint64 (forcing promotion to bignum).
func addSmall(negA bool, a uint64, negB bool, b uint64) (sum uint64, neg bool, ok bool) {
	if negA == negB {
		s, carry := bits.Add64(a, b, 0)
		if carry != 0 {
			return 0, false, false
		}
		return s, negA, true
	}
	if a >= b {
		return a - b, negA, true
	}
	return b - a, negB, true
}

// String renders i in base 10 for diagnostics; text rendering for the
// object layer goes through object.Render (wrapped by internal/render),
// which also prints integers in base 10.
func (i Integer) String() string {
	return bignum.FormatInt(i.ToBigInt())
}
