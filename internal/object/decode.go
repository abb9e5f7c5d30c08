package object

import (
	"rpl/internal/decimal"
	"rpl/internal/leb128"
	"rpl/internal/numeric"
	"rpl/internal/numeric/bignum"
)

// Decode reads one tagged object from the front of buf, returning the
// object and the number of bytes consumed.
func Decode(buf []byte) (Object, int, error) {
	tag, n, err := ReadTag(buf)
	if err != nil {
		return nil, 0, err
	}
	rest := buf[n:]
	obj, m, err := decodePayload(tag, rest)
	if err != nil {
		return nil, 0, err
	}
	return obj, n + m, nil
}

func decodePayload(tag Tag, buf []byte) (Object, int, error) {
	switch tag {
	case TagPosInteger, TagNegInteger:
		return decodeSmallInteger(tag == TagNegInteger, buf)
	case TagPosBignum, TagNegBignum:
		return decodeBignumInteger(tag == TagNegBignum, buf)
	case TagFraction:
		return decodeFraction(buf)
	case TagDecimal, TagNegDecimal:
		return decodeDecimal(tag == TagNegDecimal, buf)
	case TagComplexRect, TagComplexPolar:
		return decodeComplex(tag == TagComplexPolar, buf)
	case TagSymbol:
		s, n, err := readString(buf)
		return Symbol{Name: s}, n, err
	case TagText:
		s, n, err := readString(buf)
		return Text{S: s}, n, err
	case TagProgram:
		items, n, err := decodeObjectList(buf)
		return Program{Body: items}, n, err
	case TagList:
		items, n, err := decodeObjectList(buf)
		return List{Items: items}, n, err
	case TagExpression:
		items, n, err := decodeObjectList(buf)
		return Expression{Items: items}, n, err
	case TagDoUntil:
		return decodeDoUntil(buf)
	case TagWhileRepeat:
		return decodeWhileRepeat(buf)
	case TagStartNext, TagStartStep:
		body, n, err := decodeProgram(buf)
		return StartLoop{Body: body, HasStep: tag == TagStartStep}, n, err
	case TagForNext, TagForStep:
		return decodeForLoop(tag == TagForStep, buf)
	case TagIfThenElse:
		return decodeIfThenElse(buf)
	case TagCommand:
		s, n, err := readString(buf)
		return Command{Name: s}, n, err
	default:
		return nil, 0, ErrCorruptTag
	}
}

func decodeSmallInteger(neg bool, buf []byte) (Object, int, error) {
	v, n := leb128.Uvarint(buf)
	if n == 0 {
		return nil, 0, ErrTruncated
	}
	return Integer{V: numeric.Integer{Neg: neg, Small: v}}, n, nil
}

func decodeBignumInteger(neg bool, buf []byte) (Object, int, error) {
	l, n := leb128.Uvarint(buf)
	if n == 0 {
		return nil, 0, ErrTruncated
	}
	end := n + int(l)
	if end > len(buf) {
		return nil, 0, ErrTruncated
	}
	mag := buf[n:end]
	big := bignum.IntSetBytes(neg, mag)
	return Integer{V: numeric.FromBigInt(big)}, end, nil
}

func decodeFraction(buf []byte) (Object, int, error) {
	numObj, n1, err := Decode(buf)
	if err != nil {
		return nil, 0, err
	}
	num, ok := numObj.(Integer)
	if !ok {
		return nil, 0, ErrCorruptTag
	}
	denObj, n2, err := Decode(buf[n1:])
	if err != nil {
		return nil, 0, err
	}
	den, ok := denObj.(Integer)
	if !ok {
		return nil, 0, ErrCorruptTag
	}
	return Fraction{V: numeric.Fraction{Num: num.V, Den: den.V}}, n1 + n2, nil
}

func decodeDecimal(neg bool, buf []byte) (Object, int, error) {
	d, n, err := decodeDecimalPayload(neg, buf)
	if err != nil {
		return nil, 0, err
	}
	return Decimal{V: d}, n, nil
}

func decodeDecimalPayload(neg bool, buf []byte) (decimal.Decimal, int, error) {
	exp, n1 := leb128.Varint(buf)
	if n1 == 0 {
		return decimal.Decimal{}, 0, ErrTruncated
	}
	cnt, n2 := leb128.Uvarint(buf[n1:])
	if n2 == 0 {
		return decimal.Decimal{}, 0, ErrTruncated
	}
	off := n1 + n2
	kigits := make([]decimal.Kigit, cnt)
	for i := range kigits {
		k, nk := leb128.Uvarint(buf[off:])
		if nk == 0 {
			return decimal.Decimal{}, 0, ErrTruncated
		}
		kigits[i] = decimal.Kigit(k)
		off += nk
	}
	if cnt == 0 {
		neg = false
	}
	return decimal.Decimal{Neg: neg, Exp: int(exp), Kigits: kigits}, off, nil
}

func decodeComplex(polar bool, buf []byte) (Object, int, error) {
	aObj, n1, err := Decode(buf)
	if err != nil {
		return nil, 0, err
	}
	a, ok := aObj.(Decimal)
	if !ok {
		return nil, 0, ErrCorruptTag
	}
	bObj, n2, err := Decode(buf[n1:])
	if err != nil {
		return nil, 0, err
	}
	b, ok := bObj.(Decimal)
	if !ok {
		return nil, 0, ErrCorruptTag
	}
	form := numeric.Rectangular
	if polar {
		form = numeric.Polar
	}
	return Complex{V: numeric.Complex{Form: form, A: a.V, B: b.V}}, n1 + n2, nil
}

func readString(buf []byte) (string, int, error) {
	l, n := leb128.Uvarint(buf)
	if n == 0 {
		return "", 0, ErrTruncated
	}
	end := n + int(l)
	if end > len(buf) {
		return "", 0, ErrTruncated
	}
	return string(buf[n:end]), end, nil
}

func decodeObjectList(buf []byte) ([]Object, int, error) {
	cnt, n := leb128.Uvarint(buf)
	if n == 0 {
		return nil, 0, ErrTruncated
	}
	items := make([]Object, cnt)
	off := n
	for i := range items {
		obj, m, err := Decode(buf[off:])
		if err != nil {
			return nil, 0, err
		}
		items[i] = obj
		off += m
	}
	return items, off, nil
}

func decodeProgram(buf []byte) (Program, int, error) {
	obj, n, err := Decode(buf)
	if err != nil {
		return Program{}, 0, err
	}
	p, ok := obj.(Program)
	if !ok {
		return Program{}, 0, ErrCorruptTag
	}
	return p, n, nil
}

func decodeDoUntil(buf []byte) (Object, int, error) {
	body, n1, err := decodeProgram(buf)
	if err != nil {
		return nil, 0, err
	}
	cond, n2, err := decodeProgram(buf[n1:])
	if err != nil {
		return nil, 0, err
	}
	return DoUntil{Body: body, Cond: cond}, n1 + n2, nil
}

func decodeWhileRepeat(buf []byte) (Object, int, error) {
	cond, n1, err := decodeProgram(buf)
	if err != nil {
		return nil, 0, err
	}
	body, n2, err := decodeProgram(buf[n1:])
	if err != nil {
		return nil, 0, err
	}
	return WhileRepeat{Cond: cond, Body: body}, n1 + n2, nil
}

func decodeForLoop(hasStep bool, buf []byte) (Object, int, error) {
	name, n1, err := readString(buf)
	if err != nil {
		return nil, 0, err
	}
	body, n2, err := decodeProgram(buf[n1:])
	if err != nil {
		return nil, 0, err
	}
	return ForLoop{Name: name, Body: body, HasStep: hasStep}, n1 + n2, nil
}

func decodeIfThenElse(buf []byte) (Object, int, error) {
	cond, n1, err := decodeProgram(buf)
	if err != nil {
		return nil, 0, err
	}
	off := n1
	then, n2, err := decodeProgram(buf[off:])
	if err != nil {
		return nil, 0, err
	}
	off += n2
	if off >= len(buf) {
		return nil, 0, ErrTruncated
	}
	flag := buf[off]
	off++
	if flag == 0 {
		return IfThenElse{Cond: cond, Then: then}, off, nil
	}
	elseBranch, n3, err := decodeProgram(buf[off:])
	if err != nil {
		return nil, 0, err
	}
	off += n3
	return IfThenElse{Cond: cond, Then: then, Else: elseBranch, HasElse: true}, off, nil
}
