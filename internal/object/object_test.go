package object

import (
	"testing"

	"rpl/internal/decimal"
	"rpl/internal/numeric"
	"rpl/internal/numeric/bignum"
	"rpl/internal/settings"
)

func roundTrip(t *testing.T, obj Object) Object {
	t.Helper()
	buf := Encode(nil, obj)
	got, n, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("Decode consumed %d bytes, encoding was %d", n, len(buf))
	}
	return got
}

func TestRoundTripSmallInteger(t *testing.T) {
	obj := Integer{V: numeric.SmallInt(-42)}
	got := roundTrip(t, obj).(Integer)
	if got.V.Neg != true || got.V.Small != 42 {
		t.Fatalf("got %+v", got.V)
	}
	if obj.Tag() != TagNegInteger {
		t.Fatalf("tag = %v, want TagNegInteger", obj.Tag())
	}
}

func TestRoundTripBignum(t *testing.T) {
	big := bignum.IntFromUint64(1 << 63)
	big2, err := bignum.IntMul(big, bignum.IntFromUint64(4))
	if err != nil {
		t.Fatalf("IntMul: %v", err)
	}
	obj := Integer{V: numeric.FromBigInt(big2)}
	if obj.V.IsSmall() {
		t.Fatalf("expected bignum promotion")
	}
	got := roundTrip(t, obj).(Integer)
	if got.V.ToBigInt().Cmp(obj.V.ToBigInt()) != 0 {
		t.Fatalf("bignum round trip mismatch")
	}
}

func TestRoundTripFraction(t *testing.T) {
	frac, ok, err := numeric.NewFraction(numeric.SmallInt(6), numeric.SmallInt(8))
	if err != nil || !ok {
		t.Fatalf("NewFraction: %v %v", ok, err)
	}
	obj := Fraction{V: frac}
	got := roundTrip(t, obj).(Fraction)
	if numeric.CompareFraction(got.V, frac) != 0 {
		t.Fatalf("fraction round trip mismatch")
	}
}

func TestRoundTripDecimal(t *testing.T) {
	d, err := decimal.Parse("3.25", settings.Default())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	obj := Decimal{V: d}
	got := roundTrip(t, obj).(Decimal)
	if !decimal.Equal(got.V, d) {
		t.Fatalf("decimal round trip mismatch: %+v vs %+v", got.V, d)
	}
}

func TestRoundTripComplex(t *testing.T) {
	re, _ := decimal.Parse("1", settings.Default())
	im, _ := decimal.Parse("2", settings.Default())
	obj := Complex{V: numeric.Complex{Form: numeric.Rectangular, A: re, B: im}}
	got := roundTrip(t, obj).(Complex)
	if !decimal.Equal(got.V.A, re) || !decimal.Equal(got.V.B, im) {
		t.Fatalf("complex round trip mismatch")
	}
}

func TestRoundTripSymbolAndText(t *testing.T) {
	sym := roundTrip(t, Symbol{Name: "ALPHA"}).(Symbol)
	if sym.Name != "ALPHA" {
		t.Fatalf("symbol round trip mismatch: %q", sym.Name)
	}
	txt := roundTrip(t, Text{S: "hello world"}).(Text)
	if txt.S != "hello world" {
		t.Fatalf("text round trip mismatch: %q", txt.S)
	}
}

func TestRoundTripProgram(t *testing.T) {
	prog := Program{Body: []Object{
		Integer{V: numeric.SmallInt(1)},
		Integer{V: numeric.SmallInt(2)},
		Command{Name: "+"},
	}}
	got := roundTrip(t, prog).(Program)
	if len(got.Body) != 3 {
		t.Fatalf("program round trip lost items: got %d, want 3", len(got.Body))
	}
	if cmd, ok := got.Body[2].(Command); !ok || cmd.Name != "+" {
		t.Fatalf("program round trip corrupted command: %+v", got.Body[2])
	}
}

func TestRoundTripIfThenElse(t *testing.T) {
	ite := IfThenElse{
		Cond:    Program{Body: []Object{Command{Name: "DUP"}}},
		Then:    Program{Body: []Object{Integer{V: numeric.SmallInt(1)}}},
		Else:    Program{Body: []Object{Integer{V: numeric.SmallInt(0)}}},
		HasElse: true,
	}
	got := roundTrip(t, ite).(IfThenElse)
	if !got.HasElse {
		t.Fatalf("lost HasElse flag")
	}
	if len(got.Else.Body) != 1 {
		t.Fatalf("else branch round trip mismatch")
	}
}

func TestRoundTripForLoop(t *testing.T) {
	fl := ForLoop{Name: "I", Body: Program{Body: []Object{Command{Name: "I"}}}, HasStep: true}
	got := roundTrip(t, fl).(ForLoop)
	if got.Name != "I" || !got.HasStep {
		t.Fatalf("for-loop round trip mismatch: %+v", got)
	}
}

func TestTagCategoryPredicates(t *testing.T) {
	if !TagPosInteger.IsInteger() || !TagNegBignum.IsInteger() {
		t.Fatalf("integer tags misclassified")
	}
	if !TagFraction.IsReal() || !TagDecimal.IsReal() {
		t.Fatalf("real tags misclassified")
	}
	if !TagComplexRect.IsNumeric() {
		t.Fatalf("complex should be numeric")
	}
	if TagComplexRect.IsReal() {
		t.Fatalf("complex should not be real")
	}
	if !TagDoUntil.IsLoop() || !TagIfThenElse.IsLoop() {
		t.Fatalf("loop tags misclassified")
	}
	if TagCommand.IsLoop() {
		t.Fatalf("command should not be a loop tag")
	}
}

func TestRenderInteger(t *testing.T) {
	s := Render(Integer{V: numeric.SmallInt(-7)}, settings.Default())
	if s != "-7" {
		t.Fatalf("Render = %q, want -7", s)
	}
}
