package decimal

import (
	"errors"
	"fmt"

	"rpl/internal/settings"
)

// ErrParse reports a malformed decimal literal.
var ErrParse = errors.New("decimal: invalid literal")

// Parse converts a complete decimal literal (sign, digits, optional
// fraction, optional exponent) into a Decimal, using cfg for the
// decimal point, grouping and exponent separator characters (ground:
// PARSE_BODY(decimal), original_source/src/decimal.cc). Parse expects
// the whole string to be consumed; the token boundary itself is the
// text parser's job (internal/parser), not this package's.
func Parse(s string, cfg settings.Settings) (Decimal, error) {
	if s == "" {
		return Decimal{}, ErrParse
	}

	decSep := byte(cfg.DecimalSeparator)
	if decSep == 0 {
		decSep = '.'
	}
	groupSep := byte(cfg.NumberSeparator)
	expSep := lowerASCII(byte(cfg.ExponentSeparator))
	if expSep == 0 {
		expSep = 'e'
	}

	i := 0
	neg := false
	if s[i] == '+' || s[i] == '-' {
		neg = s[i] == '-'
		i++
	}

	var digits []byte
	intDigits := 0
	sawDigit := false

	consumeDigits := func() int {
		n := 0
		for i < len(s) {
			c := s[i]
			switch {
			case c >= '0' && c <= '9':
				digits = append(digits, c-'0')
				n++
				sawDigit = true
				i++
			case groupSep != 0 && c == groupSep:
				i++
			default:
				return n
			}
		}
		return n
	}

	intDigits = consumeDigits()

	if i < len(s) && s[i] == decSep {
		i++
		consumeDigits()
	}

	if !sawDigit {
		return Decimal{}, ErrParse
	}

	exp := intDigits
	if i < len(s) && lowerASCII(s[i]) == expSep {
		i++
		eneg := false
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			eneg = s[i] == '-'
			i++
		}
		start := i
		e := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			e = e*10 + int(s[i]-'0')
			i++
		}
		if i == start {
			return Decimal{}, fmt.Errorf("%w: %q: missing exponent digits", ErrParse, s)
		}
		if eneg {
			e = -e
		}
		exp += e
	}

	if i != len(s) {
		return Decimal{}, fmt.Errorf("%w: %q: unexpected %q", ErrParse, s, s[i:])
	}

	precision := cfg.Precision
	if precision <= 0 || precision > len(digits) {
		precision = len(digits)
	}
	if cfg.TooManyDigitsErrors && len(digits) > cfg.Precision && cfg.Precision > 0 {
		return Decimal{}, fmt.Errorf("%w: %q: too many digits for precision %d", ErrParse, s, cfg.Precision)
	}
	return finalize(neg, exp, digits, precision), nil
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
