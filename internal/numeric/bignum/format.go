package bignum

import (
	"fmt"
	"strings"
)

func FormatUint(u BigUint) string {
	limbs := trimLimbs(u.Limbs)
	if len(limbs) == 0 {
		return "0"
	}

	const base = uint32(1_000_000_000)

	cur := BigUint{Limbs: limbs}
	var parts []uint32
	for !cur.IsZero() {
		q, r, err := UintDivModSmall(cur, base)
		if err != nil {
			return "<format-error>"
		}
		parts = append(parts, r)
		cur = q
	}

	var sb strings.Builder
	last := parts[len(parts)-1]
	sb.WriteString(fmt.Sprintf("%d", last))
	for i := len(parts) - 2; i >= 0; i-- {
		sb.WriteString(fmt.Sprintf("%09d", parts[i]))
		if i == 0 {
			break
		}
	}
	return sb.String()
}

func FormatInt(i BigInt) string {
	limbs := trimLimbs(i.Limbs)
	if len(limbs) == 0 {
		return "0"
	}
	s := FormatUint(BigUint{Limbs: limbs})
	if i.Neg {
		return "-" + s
	}
	return s
}

const radixDigits = "0123456789abcdef"

// FormatUintRadix renders u in the given base (2, 8, 10 or 16) with no
// prefix, in lowercase digits the parser's `#<digits>b|o|d|h` syntax
// reads back. object.Render prints integers in base 10 and does not
// call it.
func FormatUintRadix(u BigUint, base uint32) string {
	limbs := trimLimbs(u.Limbs)
	if len(limbs) == 0 {
		return "0"
	}
	cur := BigUint{Limbs: limbs}
	var digits []byte
	for !cur.IsZero() {
		q, r, err := UintDivModSmall(cur, base)
		if err != nil {
			return "<format-error>"
		}
		digits = append(digits, radixDigits[r])
		cur = q
	}
	// digits were collected least-significant first.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
