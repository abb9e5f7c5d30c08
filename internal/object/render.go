package object

import (
	"strings"

	"rpl/internal/decimal"
	"rpl/internal/numeric"
	"rpl/internal/numeric/bignum"
	"rpl/internal/settings"
)

// Render produces the on-screen/editing text for obj (spec §4.5's
// "object-level renderer wrapping the decimal renderer"). Composite
// objects render their children space-separated inside the construct's
// usual delimiters, matching RPL's own surface syntax.
func Render(obj Object, cfg settings.Settings) string {
	switch v := obj.(type) {
	case Integer:
		return renderInteger(v)
	case Fraction:
		return renderInteger(Integer{V: v.V.Num}) + "/" + renderInteger(Integer{V: v.V.Den})
	case Decimal:
		return decimal.Render(v.V, cfg)
	case Complex:
		a := decimal.Render(v.V.A, cfg)
		b := decimal.Render(v.V.B, cfg)
		if v.V.Form == numeric.Polar {
			return "(" + a + "∠" + b + ")"
		}
		return "(" + a + "," + b + ")"
	case Symbol:
		return v.Name
	case Text:
		return renderText(v.S)
	case Program:
		return "« " + renderBody(v.Body, cfg) + " »"
	case List:
		return "{ " + renderBody(v.Items, cfg) + " }"
	case Expression:
		return "'" + renderBody(v.Items, cfg) + "'"
	case DoUntil:
		return "DO " + renderBody(v.Body.Body, cfg) + " UNTIL " + renderBody(v.Cond.Body, cfg) + " END"
	case WhileRepeat:
		return "WHILE " + renderBody(v.Cond.Body, cfg) + " REPEAT " + renderBody(v.Body.Body, cfg) + " END"
	case StartLoop:
		if v.HasStep {
			return "START " + renderBody(v.Body.Body, cfg) + " STEP"
		}
		return "START " + renderBody(v.Body.Body, cfg) + " NEXT"
	case ForLoop:
		kw := "NEXT"
		if v.HasStep {
			kw = "STEP"
		}
		return "FOR " + v.Name + " " + renderBody(v.Body.Body, cfg) + " " + kw
	case IfThenElse:
		s := "IF " + renderBody(v.Cond.Body, cfg) + " THEN " + renderBody(v.Then.Body, cfg)
		if v.HasElse {
			s += " ELSE " + renderBody(v.Else.Body, cfg)
		}
		return s + " END"
	case Command:
		return v.Name
	default:
		return "?"
	}
}

func renderBody(items []Object, cfg settings.Settings) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = Render(it, cfg)
	}
	return strings.Join(parts, " ")
}

// renderText quotes s with RPL's own escaping: an embedded quote is
// doubled, matching the parser's text reader rather than Go's
// backslash convention.
func renderText(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func renderInteger(i Integer) string {
	s := bignum.FormatUint(i.V.ToBigInt().Abs())
	if i.V.Neg && s != "0" {
		return "-" + s
	}
	return s
}
