package decimal

import (
	"testing"

	"rpl/internal/settings"
)

func mustParse(t *testing.T, s string) Decimal {
	t.Helper()
	d, err := Parse(s, settings.Default())
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return d
}

func TestParseRenderRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "-1", "3.25", "100", "0.001", "123456.789", "-0.5"}
	cfg := settings.Default()
	for _, c := range cases {
		d := mustParse(t, c)
		got := Render(d, cfg)
		if _, err := Parse(got, cfg); err != nil {
			t.Fatalf("round-trip render of %q produced unparseable %q: %v", c, got, err)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	cfg := settings.Default()
	for _, s := range []string{"", "abc", "1.2.3", "1e", "-", "1x"} {
		if _, err := Parse(s, cfg); err == nil {
			t.Fatalf("Parse(%q) unexpectedly succeeded", s)
		}
	}
}

func TestCompare(t *testing.T) {
	cfg := settings.Default()
	cases := []struct {
		a, b string
		want int
	}{
		{"1", "2", -1},
		{"2", "1", 1},
		{"1", "1", 0},
		{"-1", "1", -1},
		{"-2", "-1", -1},
		{"0", "0", 0},
		{"0", "-1", 1},
		{"100", "99.99", 1},
		{"0.001", "0.0009", 1},
	}
	for _, c := range cases {
		a, err := Parse(c.a, cfg)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Parse(c.b, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if got := Compare(a, b); got != c.want {
			t.Errorf("Compare(%s,%s) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestAddSub(t *testing.T) {
	cfg := settings.Default()
	cases := []struct {
		a, b, wantAdd, wantSub string
	}{
		{"1", "2", "3", "-1"},
		{"1.5", "2.25", "3.75", "-0.75"},
		{"100", "0.01", "100.01", "99.99"},
		{"-5", "3", "-2", "-8"},
		{"0", "7", "7", "-7"},
	}
	for _, c := range cases {
		a := mustParse(t, c.a)
		b := mustParse(t, c.b)
		if got := Render(Add(a, b, cfg.Precision), cfg); got != c.wantAdd {
			t.Errorf("Add(%s,%s) = %s, want %s", c.a, c.b, got, c.wantAdd)
		}
		if got := Render(Sub(a, b, cfg.Precision), cfg); got != c.wantSub {
			t.Errorf("Sub(%s,%s) = %s, want %s", c.a, c.b, got, c.wantSub)
		}
	}
}

func TestMul(t *testing.T) {
	cfg := settings.Default()
	cases := []struct{ a, b, want string }{
		{"2", "3", "6"},
		{"1.5", "2", "3"},
		{"-4", "5", "-20"},
		{"0.1", "0.1", "0.01"},
	}
	for _, c := range cases {
		a := mustParse(t, c.a)
		b := mustParse(t, c.b)
		if got := Render(Mul(a, b, cfg.Precision), cfg); got != c.want {
			t.Errorf("Mul(%s,%s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestDiv(t *testing.T) {
	cfg := settings.Default()
	cases := []struct{ a, b, want string }{
		{"6", "3", "2"},
		{"1", "4", "0.25"},
		{"10", "3", "3.3333333333333333333"},
	}
	for _, c := range cases {
		a := mustParse(t, c.a)
		b := mustParse(t, c.b)
		got := Render(Div(a, b, cfg.Precision), cfg)
		if got != c.want {
			t.Errorf("Div(%s,%s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestDivByZero(t *testing.T) {
	cfg := settings.Default()
	a := mustParse(t, "5")
	z := mustParse(t, "0")
	got := Div(a, z, cfg.Precision)
	if !got.IsInf() {
		t.Fatalf("Div(5,0) = %+v, want Infinity", got)
	}
	if got2 := Div(z, z, cfg.Precision); !got2.IsNaN() {
		t.Fatalf("Div(0,0) = %+v, want NaN", got2)
	}
}

func TestFpclass(t *testing.T) {
	if Zero().Fpclass() != ClassPosZero {
		t.Fatalf("zero class mismatch")
	}
	if Infinity(false).Fpclass() != ClassPosInfinity {
		t.Fatalf("infinity class mismatch")
	}
	if !NaN().IsNaN() {
		t.Fatalf("NaN().IsNaN() = false")
	}
}

func TestIsOne(t *testing.T) {
	one := mustParse(t, "1")
	if !one.IsOne() {
		t.Fatalf("1 should be IsOne")
	}
	if mustParse(t, "1.0001").IsOne() {
		t.Fatalf("1.0001 should not be IsOne")
	}
}

func TestRenderFix(t *testing.T) {
	cfg := settings.Default()
	cfg.DisplayMode = settings.Fix
	cfg.DisplayDigits = 2
	d := mustParse(t, "3.14159")
	if got := Render(d, cfg); got != "3.14" {
		t.Errorf("Fix render = %q, want 3.14", got)
	}
	zero := mustParse(t, "0")
	if got := Render(zero, cfg); got != "0.00" {
		t.Errorf("Fix render of zero = %q, want 0.00", got)
	}
}

func TestRenderSci(t *testing.T) {
	cfg := settings.Default()
	cfg.DisplayMode = settings.Sci
	cfg.DisplayDigits = 3
	cfg.FancyExponent = false
	d := mustParse(t, "12345")
	if got := Render(d, cfg); got != "1.23e4" {
		t.Errorf("Sci render = %q, want 1.23e4", got)
	}
}
