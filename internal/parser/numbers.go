package parser

import (
	"strings"

	"rpl/internal/decimal"
	"rpl/internal/diag"
	"rpl/internal/numeric"
	"rpl/internal/numeric/bignum"
	"rpl/internal/object"
	"rpl/internal/settings"
)

// numberRun reports whether the current position starts a number
// literal: a digit, or a '-' glued directly to a digit (no separating
// space, so "3 -4" is two pushes but "3 4 -" is subtraction — spec
// leaves sign-vs-subtract disambiguation unspecified, resolved here by
// whitespace adjacency).
func (p *Parser) numberRun() bool {
	if isDigit(p.peek()) {
		return true
	}
	return p.peek() == '-' && isDigit(p.peekAt(1))
}

// readNumberText consumes a number literal's raw text: sign, digits,
// an optional '/', digits (fraction), or an optional '.' and exponent
// (decimal).
func (p *Parser) readNumberText() string {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	for isDigit(p.peek()) {
		p.pos++
	}
	if p.peek() == '/' && isDigit(p.peekAt(1)) {
		p.pos++
		for isDigit(p.peek()) {
			p.pos++
		}
		return string(p.src[start:p.pos])
	}
	if p.peek() == '.' {
		p.pos++
		for isDigit(p.peek()) {
			p.pos++
		}
	}
	if p.peek() == 'e' || p.peek() == 'E' {
		save := p.pos
		p.pos++
		if p.peek() == '+' || p.peek() == '-' {
			p.pos++
		}
		if isDigit(p.peek()) {
			for isDigit(p.peek()) {
				p.pos++
			}
		} else {
			p.pos = save
		}
	}
	return string(p.src[start:p.pos])
}

func (p *Parser) parseNumber() (object.Object, error) {
	text := p.readNumberText()
	if idx := strings.IndexByte(text, '/'); idx >= 0 {
		numText, denText := text[:idx], text[idx+1:]
		numBig, err := bignum.ParseInt(numText)
		if err != nil {
			return nil, diag.SyntaxError(diag.SyntaxTooManyDigits, "bad fraction numerator %q", numText)
		}
		denBig, err := bignum.ParseInt(denText)
		if err != nil {
			return nil, diag.SyntaxError(diag.SyntaxTooManyDigits, "bad fraction denominator %q", denText)
		}
		frac, ok, ferr := numeric.NewFraction(numeric.FromBigInt(numBig), numeric.FromBigInt(denBig))
		if ferr != nil {
			return nil, diag.SyntaxError(diag.SyntaxTooManyDigits, "%v", ferr)
		}
		if !ok {
			return object.Integer{V: frac.Num}, nil
		}
		return object.Fraction{V: frac}, nil
	}
	if strings.ContainsAny(text, ".eE") {
		d, err := decimal.Parse(text, settings.Default())
		if err != nil {
			return nil, diag.SyntaxError(diag.SyntaxMantissaOverflow, "%v", err)
		}
		return object.Decimal{V: d}, nil
	}
	big, err := bignum.ParseInt(text)
	if err != nil {
		return nil, diag.SyntaxError(diag.SyntaxTooManyDigits, "bad integer %q", text)
	}
	return object.Integer{V: numeric.FromBigInt(big)}, nil
}

// parseBasedInteger reads "#<digits><b|o|d|h>" (spec §6's based-integer
// literal syntax); with no recognized suffix letter the digits are
// read as hexadecimal, matching the base the suffix letters name.
func (p *Parser) parseBasedInteger() (object.Object, error) {
	p.pos++ // '#'
	start := p.pos
	for isWordChar(p.peek()) {
		p.pos++
	}
	text := string(p.src[start:p.pos])
	if text == "" {
		return nil, diag.SyntaxError(diag.SyntaxExponentNoDigits, "empty based integer")
	}
	base := uint32(16)
	switch lowerASCII(text[len(text)-1]) {
	case 'b':
		base, text = 2, text[:len(text)-1]
	case 'o':
		base, text = 8, text[:len(text)-1]
	case 'd':
		base, text = 10, text[:len(text)-1]
	case 'h':
		base, text = 16, text[:len(text)-1]
	}
	u, err := bignum.ParseUintRadix(text, base)
	if err != nil {
		return nil, diag.SyntaxError(diag.SyntaxTooManyDigits, "%v", err)
	}
	return object.Integer{V: numeric.FromBigInt(bignum.BigInt{Limbs: u.Limbs})}, nil
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// parseComplex reads "(re,im)" or "(mag<angle-mark>angle)" (spec §6's
// rectangular/polar complex literal syntax).
func (p *Parser) parseComplex() (object.Object, error) {
	p.pos++ // '('
	p.skipSpace()
	aText := p.readNumberText()
	a, err := decimal.Parse(aText, settings.Default())
	if err != nil {
		return nil, diag.SyntaxError(diag.SyntaxMantissaOverflow, "%v", err)
	}
	p.skipSpace()
	form := numeric.Rectangular
	switch p.peek() {
	case ',':
		p.pos++
	case '∠': // ∠
		form = numeric.Polar
		p.pos++
	default:
		return nil, diag.SyntaxError(diag.SyntaxUnexpectedToken, "expected ',' or '∠' in complex literal")
	}
	p.skipSpace()
	bText := p.readNumberText()
	b, err := decimal.Parse(bText, settings.Default())
	if err != nil {
		return nil, diag.SyntaxError(diag.SyntaxMantissaOverflow, "%v", err)
	}
	p.skipSpace()
	if p.peek() != ')' {
		return nil, diag.SyntaxError(diag.SyntaxUnterminatedConstruct, "unterminated complex literal")
	}
	p.pos++
	return object.Complex{V: numeric.Complex{Form: form, A: a, B: b}}, nil
}
