package decimal

import (
	"strings"

	"rpl/internal/settings"
)

// superscriptDigits maps ASCII digits and a minus sign to Unicode
// superscript code points, for settings.FancyExponent rendering
// (ground: RENDER_BODY(decimal)'s fancy-exponent table).
var superscriptDigits = map[byte]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'-': '⁻',
}

// digitString returns d's mantissa as digit values 0-9 (not ASCII), most
// significant first, with no leading zero. The last kigit's zero padding
// is kept; trimmedLen measures the digits without it.
func digitString(d Decimal) []byte {
	ds, _ := digitsOf(d)
	return ds
}

// trimmedLen returns the number of leading digits in digits before its
// trailing run of zeros. Kigits are stored in groups of three, so the
// last group can carry zero padding that is not itself significant —
// Std-mode rendering uses this length rather than len(digits).
func trimmedLen(digits []byte) int {
	n := len(digits)
	for n > 0 && digits[n-1] == 0 {
		n--
	}
	if n == 0 {
		return len(digits)
	}
	return n
}

// roundSignificant rounds digits (exponent exp) to exactly n
// significant digits, round-half-up, zero-padding on the right if
// digits is shorter than n.
func roundSignificant(digits []byte, exp, n int) ([]byte, int) {
	if n <= 0 {
		n = 1
	}
	if len(digits) <= n {
		out := make([]byte, n)
		copy(out, digits)
		return out, exp
	}
	out := append([]byte(nil), digits[:n]...)
	if digits[n] >= 5 {
		i := n - 1
		for i >= 0 {
			if out[i] == 9 {
				out[i] = 0
				i--
				continue
			}
			out[i]++
			break
		}
		if i < 0 {
			out = make([]byte, n)
			out[0] = 1
			exp++
		}
	}
	return out, exp
}

// splitIntFrac divides a digit stream at the decimal-point position
// implied by exp (value = 0.digits * 10^exp), zero-extending on
// whichever side is short.
func splitIntFrac(digits []byte, exp int) (intPart, fracPart []byte) {
	switch {
	case exp <= 0:
		intPart = []byte{0}
		fracPart = append(zeros(-exp), digits...)
	case exp >= len(digits):
		intPart = append(append([]byte(nil), digits...), zeros(exp-len(digits))...)
		fracPart = nil
	default:
		intPart = digits[:exp]
		fracPart = digits[exp:]
	}
	return
}

func zeros(n int) []byte {
	if n <= 0 {
		return nil
	}
	z := make([]byte, n)
	for i := range z {
		z[i] = 0
	}
	return z
}

// groupDigits renders raw digit bytes (0-9) as ASCII text, inserting
// sep every `width` digits. fromRight groups from the least-significant
// end (integer part); otherwise from the most-significant end (fraction
// part).
func groupDigits(digits []byte, width int, sep rune, fromRight bool) string {
	var sb strings.Builder
	if width <= 0 || sep == 0 || len(digits) <= width {
		for _, d := range digits {
			sb.WriteByte('0' + d)
		}
		return sb.String()
	}
	if fromRight {
		firstGroup := len(digits) % width
		if firstGroup == 0 {
			firstGroup = width
		}
		for i, d := range digits {
			if i > 0 && (i-firstGroup)%width == 0 {
				sb.WriteRune(sep)
			}
			sb.WriteByte('0' + d)
		}
		return sb.String()
	}
	for i, d := range digits {
		if i > 0 && i%width == 0 {
			sb.WriteRune(sep)
		}
		sb.WriteByte('0' + d)
	}
	return sb.String()
}

// renderExponent formats a signed base-10 exponent, in fancy Unicode
// superscript form if cfg.FancyExponent is set.
func renderExponent(exp int, cfg settings.Settings) string {
	sep := cfg.ExponentSeparator
	if sep == 0 {
		sep = 'e'
	}
	sign := ""
	if exp < 0 {
		sign = "-"
		exp = -exp
	}
	digits := itoa(exp)
	if !cfg.FancyExponent {
		return string(sep) + sign + digits
	}
	var sb strings.Builder
	sb.WriteRune(sep)
	if sign != "" {
		sb.WriteRune(superscriptDigits['-'])
	}
	for i := range len(digits) {
		sb.WriteRune(superscriptDigits[digits[i]])
	}
	return sb.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func assembleFixed(neg bool, intPart, fracPart []byte, cfg settings.Settings) string {
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString(groupDigits(intPart, cfg.MantissaSpacing, cfg.NumberSeparator, true))
	if len(fracPart) > 0 || cfg.TrailingDecimal {
		sep := cfg.DecimalSeparator
		if sep == 0 {
			sep = '.'
		}
		sb.WriteRune(sep)
		sb.WriteString(groupDigits(fracPart, cfg.FractionSpacing, cfg.NumberSeparator, false))
	}
	return sb.String()
}

// Render formats d as text under cfg's display mode (ground:
// RENDER_BODY(decimal), original_source/src/decimal.cc; mode selection
// per settings.DisplayMode).
func Render(d Decimal, cfg settings.Settings) string {
	switch d.Fpclass() {
	case ClassNaN:
		return "NaN"
	case ClassPosInfinity:
		return "∞"
	case ClassNegInfinity:
		return "-∞"
	case ClassPosZero, ClassNegZero:
		var fracPart []byte
		if cfg.DisplayMode == settings.Fix {
			fracPart = zeros(max(cfg.DisplayDigits, 0))
		}
		return assembleFixed(d.Neg, []byte{0}, fracPart, cfg)
	}

	digits := digitString(d)
	exp := d.Exp

	switch cfg.DisplayMode {
	case settings.Fix:
		sig := exp + max(cfg.DisplayDigits, 0)
		if sig <= 0 {
			return assembleFixed(d.Neg, []byte{0}, zeros(cfg.DisplayDigits), cfg)
		}
		digits, exp = roundSignificant(digits, exp, sig)
		intPart, fracPart := splitIntFrac(digits, exp)
		if len(fracPart) > cfg.DisplayDigits {
			fracPart = fracPart[:cfg.DisplayDigits]
		} else if len(fracPart) < cfg.DisplayDigits {
			fracPart = append(fracPart, zeros(cfg.DisplayDigits-len(fracPart))...)
		}
		return assembleFixed(d.Neg, intPart, fracPart, cfg)

	case settings.Sci:
		return renderScientific(d.Neg, digits, exp, max(cfg.DisplayDigits, 1), 1, cfg)

	case settings.Eng:
		shift := ((exp - 1) % 3) + 3
		shift %= 3
		return renderScientific(d.Neg, digits, exp, max(cfg.DisplayDigits, 1), shift+1, cfg)

	case settings.Sig:
		n := max(cfg.DisplayDigits, 1)
		if inStandardRange(exp, n, cfg.StandardExponent) {
			return renderFixedFromSig(d.Neg, digits, exp, n, cfg)
		}
		return renderScientific(d.Neg, digits, exp, n, 1, cfg)

	default: // Std
		n := trimmedLen(digits)
		if cfg.MinimumSignificantDigits >= 0 && n < cfg.MinimumSignificantDigits {
			n = cfg.MinimumSignificantDigits
		}
		if inStandardRange(exp, n, cfg.StandardExponent) {
			return renderFixedFromSig(d.Neg, digits, exp, n, cfg)
		}
		return renderScientific(d.Neg, digits, exp, max(n, 1), 1, cfg)
	}
}

// inStandardRange reports whether a value with this digit exponent and
// significant-digit count is close enough to 1 to render without
// scientific notation, per settings.StandardExponent (HP-classic: ±9
// by default).
func inStandardRange(exp, n, standardExponent int) bool {
	if standardExponent <= 0 {
		standardExponent = 9
	}
	return exp <= standardExponent+1 && exp >= -standardExponent-n+1
}

func renderFixedFromSig(neg bool, digits []byte, exp, n int, cfg settings.Settings) string {
	rounded, newExp := roundSignificant(digits, exp, n)
	intPart, fracPart := splitIntFrac(rounded, newExp)
	return assembleFixed(neg, intPart, fracPart, cfg)
}

// renderScientific renders digits (exponent exp) as mantissa*10^E with
// intLen digits before the decimal point and a total of n significant
// digits.
func renderScientific(neg bool, digits []byte, exp, n, intLen int, cfg settings.Settings) string {
	if intLen < 1 {
		intLen = 1
	}
	rounded, newExp := roundSignificant(digits, exp, max(n, intLen))
	e := newExp - intLen
	intPart := rounded[:intLen]
	fracPart := rounded[intLen:]
	return assembleFixed(neg, intPart, fracPart, cfg) + renderExponent(e, cfg)
}
