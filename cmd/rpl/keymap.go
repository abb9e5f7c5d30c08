package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"rpl/internal/config"
)

// keyName maps a Bubble Tea key event to the physical key name used by
// the -k<file> keymap (spec §6), for the function-key row a real
// calculator's keypad would expose. Printable keys are handled by the
// line editor directly rather than through the keymap.
func keyName(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyF1:
		return "F1", true
	case tea.KeyF2:
		return "F2", true
	case tea.KeyF3:
		return "F3", true
	case tea.KeyF4:
		return "F4", true
	case tea.KeyF5:
		return "F5", true
	case tea.KeyF6:
		return "F6", true
	default:
		return "", false
	}
}

// translateKey resolves a function-key event to the RPL text km binds
// it to, if any.
func translateKey(km config.Keymap, msg tea.KeyMsg) (string, bool) {
	name, ok := keyName(msg)
	if !ok {
		return "", false
	}
	return km.Lookup(name)
}
