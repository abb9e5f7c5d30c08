// Package state implements the .48S save/load persistence format (spec
// §6): a plain UTF-8 text snapshot of every global variable, the
// operand stack and the active settings, replayed through the parser
// and evaluator to restore a session.
package state

import (
	"fmt"
	"io"

	"rpl/internal/diag"
	"rpl/internal/eval"
	"rpl/internal/parser"
	"rpl/internal/render"
	"rpl/internal/settings"
)

// Save writes s's global variables, operand stack (deepest first) and
// settings to w, in the canonical file-persistence text form.
func Save(w io.Writer, s *eval.State) error {
	cfg := render.Canonical(s.Settings.Precision)
	for _, name := range s.VariableNames() {
		val, ok := s.Variable(name)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(w, render.Text(val, cfg, render.FilePersistence)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "'%s' STO\n\n", name); err != nil {
			return err
		}
	}
	for _, val := range s.Stack() {
		if _, err := fmt.Fprintln(w, render.Text(val, cfg, render.FilePersistence)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%d PRECISION\n", s.Settings.Precision); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d %s\n", s.Settings.DisplayDigits, displayModeWord(s.Settings.DisplayMode)); err != nil {
		return err
	}
	return nil
}

func displayModeWord(m settings.DisplayMode) string {
	switch m {
	case settings.Fix:
		return "FIX"
	case settings.Sci:
		return "SCI"
	case settings.Eng:
		return "ENG"
	case settings.Sig:
		return "SIG"
	default:
		return "STD"
	}
}

// Load clears s's runtime and replays data (as produced by Save, or
// hand-written in the same text syntax) through the parser and
// evaluator to rebuild its variables, stack and settings.
func Load(data string, s *eval.State) error {
	s.Clear()
	prog, err := parser.ParseAll(data)
	if err != nil {
		return err
	}
	if derr := s.RunBody(prog); derr != nil {
		return derr
	}
	return nil
}

// LoadError reports whether err originated as a diag.Error carrying an
// engine error code, versus a parse/IO failure, for callers that want
// to distinguish "the file is corrupt" from "the file replayed an
// arithmetic error".
func LoadError(err error) (*diag.Error, bool) {
	de, ok := err.(*diag.Error)
	return de, ok
}
