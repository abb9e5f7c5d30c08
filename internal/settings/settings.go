// Package settings defines the context object the core consults for
// display and parsing preferences. Per spec §1 the settings
// bag itself — the menu/UI layer that edits it — is out of core scope;
// this package only defines the shape the core depends on and sane
// defaults, mirroring the teacher's convention of passing small
// read-mostly config structs by value into hot paths.
package settings

// DisplayMode selects how decimals are rendered.
type DisplayMode uint8

const (
	Std DisplayMode = iota
	Fix
	Sci
	Eng
	Sig
)

func (m DisplayMode) String() string {
	switch m {
	case Std:
		return "Std"
	case Fix:
		return "Fix"
	case Sci:
		return "Sci"
	case Eng:
		return "Eng"
	case Sig:
		return "Sig"
	default:
		return "Std"
	}
}

// Settings is the bag consulted by the parser, renderer and decimal
// engine, which only read it. The evaluator's PRECISION, STD, FIX, SCI,
// ENG and SIG commands set its fields in place when they run, so a
// change made inside a running program applies to the rest of that
// same evaluation.
type Settings struct {
	// Precision is the number of decimal digits retained by the decimal
	// engine; kigits retained = ceil(Precision/3).
	Precision int

	// Display controls render-time formatting.
	DisplayMode       DisplayMode
	DisplayDigits     int
	StandardExponent  int
	TrailingDecimal   bool
	NumberSeparator   rune
	MantissaSpacing   int
	FractionSpacing   int
	FancyExponent     bool
	DecimalSeparator  rune
	ExponentSeparator rune

	// MinimumSignificantDigits is read only in Std mode, where it is the
	// smallest significant-digit count used when choosing between fixed
	// and scientific notation and when laying out the digits; -1 turns
	// it off. Fix mode does not consult it.
	MinimumSignificantDigits int

	// TooManyDigitsErrors, when true, makes parsing fail instead of
	// rounding when more digits than Precision are supplied.
	TooManyDigitsErrors bool

	// InfinityDisabled makes overflow to infinity an arithmetic error
	// instead of producing an Infinity value (spec §7).
	InfinityDisabled bool
}

// Default returns the settings used when nothing else is configured:
// 20-digit precision, Std display, period separator, integer digits
// grouped in threes with a space.
func Default() Settings {
	return Settings{
		Precision:         20,
		DisplayMode:       Std,
		DisplayDigits:     20,
		StandardExponent:  9,
		TrailingDecimal:   false,
		NumberSeparator:   ' ',
		MantissaSpacing:   3,
		FractionSpacing:   0,
		FancyExponent:     true,
		DecimalSeparator:  '.',
		ExponentSeparator: 'e',

		MinimumSignificantDigits: -1,
		TooManyDigitsErrors:      false,
		InfinityDisabled:         false,
	}
}

// Canonical returns a file-persistence style bag: period decimal
// separator, no grouping, no fancy exponents, Sig display at full
// precision. state.Save and render.Text use render.Canonical instead,
// which differs (Std display, 'E' exponent separator, no trailing
// decimal point).
func Canonical(precision int) Settings {
	s := Default()
	s.DisplayMode = Sig
	s.DisplayDigits = precision
	s.Precision = precision
	s.StandardExponent = 9
	s.TrailingDecimal = true
	s.NumberSeparator = 0
	s.MantissaSpacing = 0
	s.FractionSpacing = 0
	s.FancyExponent = false
	s.DecimalSeparator = '.'
	return s
}

// Kigits returns the number of base-1000 kigits retained at this
// precision: ceil(Precision/3).
func (s Settings) Kigits() int {
	return (s.Precision + 2) / 3
}
