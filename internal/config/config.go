// Package config loads the simulator front-end's runtime configuration:
// the key-to-command keymap (-k<file>) and the timing/memory knobs spec
// §6 exposes as command-line flags, grounded the way
// github.com/BurntSushi/toml is used for chazu-maggie's maggie.toml.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Keymap binds a physical key name (e.g. "F1", "ENTER", "SHIFT-ADD") to
// the RPL source text typed when that key is pressed. The simulator's
// default keymap is built in from DefaultKeymap; -k<file> overrides or
// extends it.
type Keymap struct {
	Bindings map[string]string `toml:"key"`
}

// Lookup returns the RPL text bound to key, if any.
func (k Keymap) Lookup(key string) (string, bool) {
	if k.Bindings == nil {
		return "", false
	}
	text, ok := k.Bindings[key]
	return text, ok
}

// DefaultKeymap is the built-in binding set used when -k<file> is not
// given: digits and the four arithmetic operators type themselves, and
// a handful of editing/control keys map to their RPL commands.
func DefaultKeymap() Keymap {
	bindings := map[string]string{
		"ENTER": "DUP",
		"DROP":  "DROP",
		"SWAP":  "SWAP",
		"CHS":   "NEG",
		"ADD":   "+",
		"SUB":   "-",
		"MUL":   "*",
		"DIV":   "/",
		"EVAL":  "EVAL",
		"CLEAR": "CLEAR",
	}
	for d := '0'; d <= '9'; d++ {
		bindings[string(d)] = string(d)
	}
	return Keymap{Bindings: bindings}
}

// LoadKeymap reads a TOML keymap file, merging its bindings on top of
// DefaultKeymap so a partial override file need only list the keys it
// changes.
func LoadKeymap(path string) (Keymap, error) {
	km := DefaultKeymap()
	if path == "" {
		return km, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return km, fmt.Errorf("config: cannot read keymap %s: %w", path, err)
	}
	var loaded Keymap
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return km, fmt.Errorf("config: parse error in keymap %s: %w", path, err)
	}
	for key, text := range loaded.Bindings {
		km.Bindings[key] = text
	}
	return km, nil
}

// Simulator collects the timing, memory and test-selection knobs spec
// §6 exposes as flags, in the units they are given on the command line
// (milliseconds, kilobytes) rather than converted to time.Duration so
// that a dump or saved session can echo them back verbatim.
type Simulator struct {
	TracePattern  string // -t<pattern>
	Noisy         bool   // -n
	SilenceBeep   bool   // -N
	TestName      string // -T<name>
	OnlyTestName  string // -O<name>
	DumpPath      string // -D<path>
	KeymapPath    string // -k<file>
	DefaultWaitMs int    // -w<ms>
	KeyDelayMs    int    // -d<ms>
	RefreshMs     int    // -r<ms>
	ImageWaitMs   int    // -i<ms>
	MemoryKB      int    // -m<kb>
	PixelScale    int    // -s<scale>
}

// DefaultSimulator returns the flag values the simulator uses when none
// of spec §6's flags are given on the command line.
func DefaultSimulator() Simulator {
	return Simulator{
		DefaultWaitMs: 2000,
		KeyDelayMs:    20,
		RefreshMs:     50,
		ImageWaitMs:   2000,
		MemoryKB:      256,
		PixelScale:    1,
	}
}
