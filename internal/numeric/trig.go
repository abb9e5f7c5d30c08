package numeric

import (
	"math"
	"strconv"

	"rpl/internal/decimal"
	"rpl/internal/settings"
)

// The decimal engine (internal/decimal) is purely fixed/floating-point
// arithmetic with no transcendental functions of its own; this file
// supplies the handful polar-form complex arithmetic needs (sin, cos,
// atan2, hypot) as Taylor-series/Newton helpers built on top of
// decimal.Add/Sub/Mul/Div. They are deliberately modest: enough terms
// to converge at the configured precision for the angle ranges complex
// arithmetic actually produces, not a general-purpose math library.

// piString is pi to 50 significant digits, parsed and rounded down to
// whatever precision the caller asked for.
const piString = "3.1415926535897932384626433832795028841971693993751"

func pi(precision int) decimal.Decimal {
	d, err := decimal.Parse(piString, trigSettings(precision))
	if err != nil {
		return decimal.Zero()
	}
	return d
}

// trigSettings is the minimal settings.Settings this file needs to
// parse decimal literals at a given precision; display fields are
// irrelevant here since the results only ever feed back into more
// decimal arithmetic, never rendering.
func trigSettings(precision int) settings.Settings {
	cfg := settings.Default()
	cfg.Precision = precision
	return cfg
}

func fromInt(n int64, precision int) decimal.Decimal {
	d, err := decimal.Parse(itoa64(n), trigSettings(precision))
	if err != nil {
		return decimal.Zero()
	}
	return d
}

// toFloat64Approx and fromFloat64Approx cross the decimal/float64
// boundary purely to seed Newton's method and to estimate how many
// full turns to strip during angle reduction; neither needs more than
// float64 precision since a handful of Newton iterations in exact
// decimal arithmetic erases the seed's error.
func toFloat64Approx(d decimal.Decimal) float64 {
	cfg := trigSettings(20)
	cfg.DisplayMode = settings.Sci
	cfg.DisplayDigits = 17
	cfg.FancyExponent = false
	cfg.NumberSeparator = 0
	f, err := strconv.ParseFloat(decimal.Render(d, cfg), 64)
	if err != nil {
		return 0
	}
	return f
}

func fromFloat64Approx(f float64, precision int) decimal.Decimal {
	cfg := trigSettings(precision)
	s := strconv.FormatFloat(f, 'e', 16, 64)
	d, err := decimal.Parse(s, cfg)
	if err != nil {
		return decimal.Zero()
	}
	return d
}

func mathSqrt(f float64) float64 { return math.Sqrt(f) }

func itoa64(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [24]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// decimalAbs returns |d|.
func decimalAbs(d decimal.Decimal) decimal.Decimal {
	r := d
	r.Neg = false
	return r
}

// sqrtDecimal computes sqrt(x) by Newton-Raphson, seeded from a
// float64 approximation and refined entirely in decimal arithmetic.
func sqrtDecimal(x decimal.Decimal, precision int) decimal.Decimal {
	if x.IsZero() || x.IsNaN() {
		return x
	}
	if x.IsNegative() {
		return decimal.NaN()
	}
	f := toFloat64Approx(x)
	if f <= 0 {
		f = 1
	}
	guess := fromFloat64Approx(mathSqrt(f), precision)
	two := fromInt(2, precision)
	for i := 0; i < precision/3+8; i++ {
		if guess.IsZero() {
			guess = fromInt(1, precision)
		}
		next := decimal.Div(decimal.Add(guess, decimal.Div(x, guess, precision), precision), two, precision)
		if decimal.Equal(next, guess) {
			guess = next
			break
		}
		guess = next
	}
	return guess
}

// sin and cos via Taylor series after reducing the angle into [-pi,pi].
func sin(x decimal.Decimal, precision int) decimal.Decimal {
	return taylorSinCos(x, precision, true)
}

func cos(x decimal.Decimal, precision int) decimal.Decimal {
	return taylorSinCos(x, precision, false)
}

func taylorSinCos(x decimal.Decimal, precision int, wantSin bool) decimal.Decimal {
	x = reduceAngle(x, precision)
	x2 := decimal.Mul(x, x, precision)

	var term, sum decimal.Decimal
	if wantSin {
		term = x
	} else {
		term = fromInt(1, precision)
	}
	sum = term

	maxTerms := precision/2 + 10
	for n := 1; n <= maxTerms; n++ {
		var k1, k2 int64
		if wantSin {
			k1, k2 = int64(2*n), int64(2*n+1)
		} else {
			k1, k2 = int64(2*n-1), int64(2*n)
		}
		denom := fromInt(k1*k2, precision)
		term = decimal.Div(decimal.Mul(term, x2, precision), denom, precision)
		term = term.Negated()
		sum = decimal.Add(sum, term, precision)
		if decimalAbs(term).IsZero() {
			break
		}
	}
	return sum
}

// reduceAngle brings x into roughly [-pi,pi] using a float64 estimate
// of how many full turns to subtract; exact for any angle a polar
// complex literal or arithmetic result is likely to carry.
func reduceAngle(x decimal.Decimal, precision int) decimal.Decimal {
	twoPi := decimal.Mul(pi(precision), fromInt(2, precision), precision)
	f := toFloat64Approx(decimal.Div(x, twoPi, precision))
	k := int64(math.Round(f))
	if k == 0 {
		return x
	}
	return decimal.Sub(x, decimal.Mul(twoPi, fromInt(k, precision), precision), precision)
}

// atan via Taylor series for |t|<=1, with the large-argument identity
// atan(t) = sign(t)*(pi/2 - atan(1/|t|)) otherwise.
func atan(t decimal.Decimal, precision int) decimal.Decimal {
	if t.IsZero() {
		return t
	}
	one := fromInt(1, precision)
	if decimal.Compare(decimalAbs(t), one) > 0 {
		inv := decimal.Div(one, decimalAbs(t), precision)
		half := decimal.Div(pi(precision), fromInt(2, precision), precision)
		r := decimal.Sub(half, atan(inv, precision), precision)
		if t.IsNegative() {
			return r.Negated()
		}
		return r
	}
	t2 := decimal.Mul(t, t, precision)
	term := t
	sum := t
	maxTerms := precision + 10
	for n := 1; n <= maxTerms; n++ {
		term = decimal.Mul(term, t2, precision)
		denom := fromInt(int64(2*n+1), precision)
		addend := decimal.Div(term, denom, precision)
		if n%2 == 1 {
			addend = addend.Negated()
		}
		sum = decimal.Add(sum, addend, precision)
		if decimalAbs(addend).IsZero() {
			break
		}
	}
	return sum
}

// atan2 resolves the quadrant-correct angle of (x,y), ground: standard
// atan2 case split over atan(y/x).
func atan2(y, x decimal.Decimal, precision int) decimal.Decimal {
	half := decimal.Div(pi(precision), fromInt(2, precision), precision)
	switch {
	case !x.IsZero():
		a := atan(decimal.Div(y, x, precision), precision)
		if x.IsNegative() {
			if y.IsNegative() {
				return decimal.Sub(a, pi(precision), precision)
			}
			return decimal.Add(a, pi(precision), precision)
		}
		return a
	case y.IsNegative():
		return half.Negated()
	case !y.IsZero():
		return half
	default:
		return decimal.Zero()
	}
}

// hypot returns sqrt(re^2+im^2).
func hypot(re, im decimal.Decimal, precision int) decimal.Decimal {
	sum := decimal.Add(decimal.Mul(re, re, precision), decimal.Mul(im, im, precision), precision)
	return sqrtDecimal(sum, precision)
}
