package render

import (
	"testing"

	"rpl/internal/numeric"
	"rpl/internal/object"
	"rpl/internal/settings"
)

func TestFilePersistenceForcesCanonical(t *testing.T) {
	cfg := settings.Default()
	cfg.DisplayMode = settings.Sci
	obj := object.Integer{V: numeric.SmallInt(42)}
	got := Text(obj, cfg, FilePersistence)
	if got != "42" {
		t.Fatalf("Text = %q, want 42", got)
	}
}

func TestWrapSplitsOnWordBoundaries(t *testing.T) {
	lines := Wrap("1 2 3 4 5", 3)
	if len(lines) == 0 {
		t.Fatalf("expected at least one line")
	}
	for _, l := range lines {
		if len([]rune(l)) > 3 && len([]rune(l)) != 1 {
			t.Fatalf("line %q exceeds width", l)
		}
	}
}

func TestTruncateAddsEllipsis(t *testing.T) {
	got := Truncate("1234567890", 5)
	if got != "1234…" {
		t.Fatalf("Truncate = %q, want %q", got, "1234…")
	}
}
