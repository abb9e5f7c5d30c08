// Package render wraps the object-level renderer with the three output
// modes the engine needs (spec §4.5, §6): on-screen display (wraps to
// the terminal width), line editing (the exact text a program would
// parse back from), and file persistence (canonical, locale-independent
// text safe to read back on any machine).
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"rpl/internal/object"
	"rpl/internal/settings"
)

// Mode selects which of the three render contexts to use.
type Mode int

const (
	OnScreen Mode = iota
	Editing
	FilePersistence
)

// Canonical returns the settings forced on every object written to a
// .48S state file: period decimal point, no digit grouping, no fancy
// Unicode exponent glyphs, and precision-wide display so the text
// round-trips exactly through Parse on any machine (spec §6).
func Canonical(precision int) settings.Settings {
	cfg := settings.Default()
	cfg.DisplayMode = settings.Std
	cfg.DisplayDigits = precision
	cfg.DecimalSeparator = '.'
	cfg.ExponentSeparator = 'E'
	cfg.NumberSeparator = 0
	cfg.MantissaSpacing = 0
	cfg.FractionSpacing = 0
	cfg.FancyExponent = false
	cfg.TooManyDigitsErrors = false
	return cfg
}

// Text renders obj under mode, forcing canonical settings for
// FilePersistence regardless of what cfg the caller passed in.
func Text(obj object.Object, cfg settings.Settings, mode Mode) string {
	if mode == FilePersistence {
		cfg = Canonical(cfg.Precision)
	}
	return object.Render(obj, cfg)
}

// Wrap breaks s into lines no wider than cols display columns, honoring
// double-width runes (spec §6's terminal display is column-accurate,
// not byte- or rune-accurate). A single over-long word is placed on its
// own line rather than split, matching a calculator's stack display
// which never hyphenates.
func Wrap(s string, cols int) []string {
	if cols <= 0 {
		return []string{s}
	}
	var lines []string
	var line strings.Builder
	width := 0
	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		sep := 0
		if width > 0 {
			sep = 1
		}
		if width+sep+w > cols && width > 0 {
			lines = append(lines, line.String())
			line.Reset()
			width = 0
			sep = 0
		}
		if sep == 1 {
			line.WriteByte(' ')
			width++
		}
		line.WriteString(word)
		width += w
	}
	if width > 0 || len(lines) == 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Truncate clips s to at most cols display columns, appending an
// ellipsis when it had to cut (spec §6's stack display truncates a
// too-wide single value rather than wrapping it).
func Truncate(s string, cols int) string {
	if runewidth.StringWidth(s) <= cols || cols <= 1 {
		return runewidth.Truncate(s, cols, "")
	}
	return runewidth.Truncate(s, cols-1, "") + "…"
}
