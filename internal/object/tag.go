// Package object implements the tagged-byte object encoding and the
// per-type operation dispatch tables (spec §3 "Object encoding", §4.2
// "Object dispatch"). Every object is a LEB128 type tag followed by a
// type-specific payload; SIZE (Decode), PARSE (internal/parser) and
// RENDER (Render) are type switches over the concrete Object types,
// not lookups in a function-vector array indexed by tag (see the
// Object comment in value.go); the dense Tag drives the category
// range checks below (ground:
// _examples/vovakirdan-surge/internal/vm/tag.go's layout-by-type-id
// lookup, adapted from user-defined ADT tags to this engine's closed
// tag set).
package object

import (
	"rpl/internal/leb128"
)

// Tag is a densely-assigned object type tag (spec §3: "values 0...N-1,
// densely assigned. ... an out-of-range tag is a fatal corruption").
type Tag uint32

const (
	TagPosInteger Tag = iota // small unsigned integer magnitude
	TagNegInteger             // small integer, negative
	TagPosBignum              // bignum magnitude, non-negative
	TagNegBignum              // bignum magnitude, negative
	TagFraction               // numerator object, denominator object
	TagDecimal                // non-negative decimal
	TagNegDecimal             // negative decimal
	TagComplexRect            // rectangular complex: two inline decimals
	TagComplexPolar           // polar complex: two inline decimals
	TagSymbol                 // identifier text, used as a name
	TagText                   // quoted string
	TagProgram                // « ... » : sequence of inline objects
	TagList                   // { ... } : sequence of inline objects
	TagExpression             // '...' : algebraic sequence of inline objects
	TagDoUntil                // DO body UNTIL cond END
	TagWhileRepeat            // WHILE cond REPEAT body END
	TagStartNext              // START start end NEXT (no step var)
	TagStartStep              // START start end STEP (no step var)
	TagForNext                // FOR name start end NEXT
	TagForStep                // FOR name start end STEP
	TagIfThenElse             // IF cond THEN then-branch ELSE else-branch END
	TagCommand                // a built-in command, dispatched by name at EXEC time
	numTags
)

// NumTags is the dense upper bound on valid tags; tag >= NumTags is the
// "fatal corruption" case spec §3 calls out.
const NumTags = int(numTags)

// Valid reports whether t is a known, in-range tag.
func (t Tag) Valid() bool { return t < numTags }

// Ordered category ranges (spec §4.2: "types form ordered ranges used
// for cheap category tests ... the only source of is-a polymorphism").
const (
	firstInteger = TagPosInteger
	lastInteger  = TagNegBignum
	firstReal    = TagPosInteger
	lastReal     = TagNegDecimal
	firstNumeric = TagPosInteger
	lastNumeric  = TagComplexPolar
	firstLoop    = TagDoUntil
	lastLoop     = TagIfThenElse
)

// IsInteger reports whether t is a small-int or bignum tag (either sign).
func (t Tag) IsInteger() bool { return t >= firstInteger && t <= lastInteger }

// IsReal reports whether t is integer, fraction or decimal (anything
// orderable on the real line).
func (t Tag) IsReal() bool { return t >= firstReal && t <= lastReal }

// IsNumeric reports whether t is any numeric tag, including complex.
func (t Tag) IsNumeric() bool { return t >= firstNumeric && t <= lastNumeric }

// IsLoop reports whether t is one of the control-flow construct tags.
func (t Tag) IsLoop() bool { return t >= firstLoop && t <= lastLoop }

// IsNegative reports whether t is the negative variant of a signed
// numeric pair (small int, bignum, decimal all encode sign in the tag
// per spec §4.3).
func (t Tag) IsNegative() bool {
	switch t {
	case TagNegInteger, TagNegBignum, TagNegDecimal:
		return true
	default:
		return false
	}
}

// ReadTag decodes the LEB128 tag at the start of buf, returning the
// tag and the number of bytes its encoding occupied.
func ReadTag(buf []byte) (Tag, int, error) {
	v, n := leb128.Uvarint(buf)
	if n == 0 {
		return 0, 0, leb128.ErrTruncated
	}
	t := Tag(v)
	if !t.Valid() {
		return 0, 0, ErrCorruptTag
	}
	return t, n, nil
}

// AppendTag appends t's LEB128 encoding to buf.
func AppendTag(buf []byte, t Tag) []byte {
	return leb128.AppendUvarint(buf, uint64(t))
}
