package object

import (
	"rpl/internal/decimal"
	"rpl/internal/leb128"
)

// Encode appends obj's tagged-byte encoding to buf (spec §3: "a LEB128
// type tag followed by a type-specific payload"). Composite objects
// encode their children inline by recursing, so a sub-object is always
// self-delimiting: Decode never needs a byte-length prefix to know
// where a nested object ends.
func Encode(buf []byte, obj Object) []byte {
	buf = AppendTag(buf, obj.Tag())
	switch v := obj.(type) {
	case Integer:
		return encodeInteger(buf, v)
	case Fraction:
		buf = Encode(buf, Integer{V: v.V.Num})
		return Encode(buf, Integer{V: v.V.Den})
	case Decimal:
		return encodeDecimalPayload(buf, v.V)
	case Complex:
		buf = Encode(buf, Decimal{V: v.V.A})
		return Encode(buf, Decimal{V: v.V.B})
	case Symbol:
		return appendString(buf, v.Name)
	case Text:
		return appendString(buf, v.S)
	case Program:
		return encodeObjectList(buf, v.Body)
	case List:
		return encodeObjectList(buf, v.Items)
	case Expression:
		return encodeObjectList(buf, v.Items)
	case DoUntil:
		buf = Encode(buf, v.Body)
		return Encode(buf, v.Cond)
	case WhileRepeat:
		buf = Encode(buf, v.Cond)
		return Encode(buf, v.Body)
	case StartLoop:
		return Encode(buf, v.Body)
	case ForLoop:
		buf = appendString(buf, v.Name)
		return Encode(buf, v.Body)
	case IfThenElse:
		buf = Encode(buf, v.Cond)
		buf = Encode(buf, v.Then)
		if v.HasElse {
			buf = append(buf, 1)
			return Encode(buf, v.Else)
		}
		return append(buf, 0)
	case Command:
		return appendString(buf, v.Name)
	default:
		return buf
	}
}

// encodeInteger writes the magnitude only: sign is already carried by
// the tag (spec §4.3).
func encodeInteger(buf []byte, i Integer) []byte {
	if i.V.IsSmall() {
		return leb128.AppendUvarint(buf, i.V.Small)
	}
	mag := i.V.ToBigInt().Bytes()
	buf = leb128.AppendUvarint(buf, uint64(len(mag)))
	return append(buf, mag...)
}

// encodeDecimalPayload writes the exponent and kigit stream; sign is
// carried by the tag.
func encodeDecimalPayload(buf []byte, d decimal.Decimal) []byte {
	buf = leb128.AppendVarint(buf, int64(d.Exp))
	buf = leb128.AppendUvarint(buf, uint64(len(d.Kigits)))
	for _, k := range d.Kigits {
		buf = leb128.AppendUvarint(buf, uint64(k))
	}
	return buf
}

func appendString(buf []byte, s string) []byte {
	buf = leb128.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

func encodeObjectList(buf []byte, items []Object) []byte {
	buf = leb128.AppendUvarint(buf, uint64(len(items)))
	for _, it := range items {
		buf = Encode(buf, it)
	}
	return buf
}
