package object

import (
	"rpl/internal/diag"
	"rpl/internal/settings"
)

// AsTruth implements the engine-wide boolean coercion spec §4.7 requires
// of every object: numeric types are true iff non-zero; anything else
// is a type error (ground: spec "any object supports as_truth()
// returning 0, 1, or error ... the engine uses this uniformly").
func AsTruth(obj Object) (bool, *diag.Error) {
	switch v := obj.(type) {
	case Integer:
		return !v.V.IsZero(), nil
	case Fraction:
		return !v.V.IsZero(), nil
	case Decimal:
		return !v.V.IsZero(), nil
	case Complex:
		return !v.V.IsZero(), nil
	default:
		return false, diag.TypeError(diag.TypeNotBoolean, "%s is not a boolean", Render(obj, settings.Default()))
	}
}
