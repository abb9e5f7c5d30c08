// Package leb128 implements the variable-length integer encoding used
// throughout the object runtime: every type tag, every size prefix and
// every integer payload is a LEB128 value.
package leb128

import "fortio.org/safecast"

// MaxVarintLen64 is the maximum number of bytes a 64-bit value can take
// once unsigned-LEB128 encoded.
const MaxVarintLen64 = 10

// PutUvarint encodes v into buf and returns the number of bytes written.
// buf must have at least MaxVarintLen64 bytes of room.
func PutUvarint(buf []byte, v uint64) int {
	i := 0
	for v >= 0x80 {
		buf[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	buf[i] = byte(v)
	return i + 1
}

// AppendUvarint appends the LEB128 encoding of v to buf.
func AppendUvarint(buf []byte, v uint64) []byte {
	var tmp [MaxVarintLen64]byte
	n := PutUvarint(tmp[:], v)
	return append(buf, tmp[:n]...)
}

// Uvarint decodes a LEB128 unsigned integer from the front of buf.
// It returns the value and the number of bytes consumed, or n == 0 if buf
// does not hold a complete encoding.
func Uvarint(buf []byte) (v uint64, n int) {
	var shift uint
	for i, b := range buf {
		if i == MaxVarintLen64 {
			return 0, 0
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, i + 1
		}
		shift += 7
	}
	return 0, 0
}

// Size returns the number of bytes PutUvarint would write for v.
func Size(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// AppendVarint appends the zig-zag LEB128 encoding of a signed value.
// Used for decimal exponents, which may be negative.
func AppendVarint(buf []byte, v int64) []byte {
	ux := uint64(v) << 1
	if v < 0 {
		ux = ^ux
	}
	return AppendUvarint(buf, ux)
}

// Varint decodes a zig-zag LEB128 signed integer.
func Varint(buf []byte) (v int64, n int) {
	ux, n := Uvarint(buf)
	if n == 0 {
		return 0, 0
	}
	x := int64(ux >> 1)
	if ux&1 != 0 {
		x = ^x
	}
	return x, n
}

// UvarintAsInt decodes an unsigned LEB128 value and narrows it to int,
// reporting an error instead of silently truncating (cf. spec's Open
// Question about as_unsigned truncating on overflow: this runtime never
// guesses, it reports).
func UvarintAsInt(buf []byte) (int, int, error) {
	v, n := Uvarint(buf)
	if n == 0 {
		return 0, 0, ErrTruncated
	}
	iv, err := safecast.Conv[int](v)
	if err != nil {
		return 0, n, err
	}
	return iv, n, nil
}
