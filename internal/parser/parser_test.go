package parser

import (
	"testing"

	"rpl/internal/object"
	"rpl/internal/settings"
)

func TestParseInteger(t *testing.T) {
	obj, err := Parse("42")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := obj.(object.Integer); !ok {
		t.Fatalf("got %T, want Integer", obj)
	}
}

func TestParseNegativeInteger(t *testing.T) {
	obj, err := Parse("-7")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	i, ok := obj.(object.Integer)
	if !ok {
		t.Fatalf("got %T, want Integer", obj)
	}
	if !i.V.Neg {
		t.Fatalf("expected negative integer")
	}
}

func TestParseDecimal(t *testing.T) {
	obj, err := Parse("3.14")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := obj.(object.Decimal); !ok {
		t.Fatalf("got %T, want Decimal", obj)
	}
}

func TestParseFraction(t *testing.T) {
	obj, err := Parse("1/3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := obj.(object.Fraction); !ok {
		t.Fatalf("got %T, want Fraction", obj)
	}
}

func TestParseText(t *testing.T) {
	obj, err := Parse(`"hello ""world"""`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	text, ok := obj.(object.Text)
	if !ok {
		t.Fatalf("got %T, want Text", obj)
	}
	if text.S != `hello "world"` {
		t.Fatalf("text = %q", text.S)
	}
}

func TestParseProgram(t *testing.T) {
	obj, err := Parse("« 1 2 + »")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	prog, ok := obj.(object.Program)
	if !ok {
		t.Fatalf("got %T, want Program", obj)
	}
	if len(prog.Body) != 3 {
		t.Fatalf("body len = %d, want 3", len(prog.Body))
	}
}

func TestParseList(t *testing.T) {
	obj, err := Parse("{ 1 2 3 }")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	list, ok := obj.(object.List)
	if !ok || len(list.Items) != 3 {
		t.Fatalf("got %#v", obj)
	}
}

func TestParseIfThenElse(t *testing.T) {
	obj, err := Parse("IF 1 THEN 2 ELSE 3 END")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ite, ok := obj.(object.IfThenElse)
	if !ok {
		t.Fatalf("got %T, want IfThenElse", obj)
	}
	if !ite.HasElse {
		t.Fatalf("expected HasElse")
	}
}

func TestParseDoUntil(t *testing.T) {
	obj, err := Parse("DO DUP 2 * DUP 1000 > UNTIL END")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := obj.(object.DoUntil); !ok {
		t.Fatalf("got %T, want DoUntil", obj)
	}
}

func TestParseForNext(t *testing.T) {
	obj, err := Parse("FOR I I + NEXT")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	f, ok := obj.(object.ForLoop)
	if !ok {
		t.Fatalf("got %T, want ForLoop", obj)
	}
	if f.Name != "I" || f.HasStep {
		t.Fatalf("got %#v", f)
	}
}

func TestParseNestedDoUntil(t *testing.T) {
	obj, err := Parse("DO DO 1 UNTIL 1 END UNTIL 1 END")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	outer, ok := obj.(object.DoUntil)
	if !ok {
		t.Fatalf("got %T, want DoUntil", obj)
	}
	if len(outer.Body.Body) != 1 {
		t.Fatalf("outer body = %#v, want one nested DoUntil", outer.Body.Body)
	}
	if _, ok := outer.Body.Body[0].(object.DoUntil); !ok {
		t.Fatalf("outer body[0] = %T, want nested DoUntil", outer.Body.Body[0])
	}
}

func TestRoundTripRenderParse(t *testing.T) {
	cases := []object.Object{
		object.Integer{},
		object.Text{S: "abc"},
		object.Symbol{Name: "FOO"},
		object.List{Items: []object.Object{}},
	}
	for _, obj := range cases {
		text := object.Render(obj, settings.Default())
		got, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if object.Render(got, settings.Default()) != text {
			t.Fatalf("round trip mismatch: %q -> %q", text, object.Render(got, settings.Default()))
		}
	}
}
