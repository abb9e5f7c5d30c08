package decimal

// Compare returns -1, 0 or +1 for a<b, a==b, a>b (ground: decimal::compare,
// original_source/src/decimal.cc:776-820). NaN is not ordered against
// anything, including itself; callers that need NaN-awareness should
// check IsNaN first — Compare treats it as larger than everything finite
// and equal only to another NaN, matching the fpclass sentinel ordering
// the original relies on for its comparison fast paths.
func Compare(a, b Decimal) int {
	if an, bn := a.IsNaN(), b.IsNaN(); an || bn {
		switch {
		case an && bn:
			return 0
		case an:
			return 1
		default:
			return -1
		}
	}
	az, bz := a.IsZero(), b.IsZero()
	if az && bz {
		return 0
	}
	if az {
		if b.Neg {
			return 1
		}
		return -1
	}
	if bz {
		if a.Neg {
			return -1
		}
		return 1
	}

	if a.Neg != b.Neg {
		if a.Neg {
			return -1
		}
		return 1
	}
	// Same sign: compare magnitudes, then flip for negative operands.
	mag := compareMagnitude(a, b)
	if a.Neg {
		return -mag
	}
	return mag
}

// compareMagnitude compares |a| and |b| ignoring sign.
func compareMagnitude(a, b Decimal) int {
	if a.Exp != b.Exp {
		if a.Exp < b.Exp {
			return -1
		}
		return 1
	}
	n := max(len(a.Kigits), len(b.Kigits))
	for i := range n {
		ka, kb := kigitAt(a.Kigits, i), kigitAt(b.Kigits, i)
		if ka != kb {
			if ka < kb {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether a and b represent the same value (NaN != NaN).
func Equal(a, b Decimal) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return Compare(a, b) == 0
}
