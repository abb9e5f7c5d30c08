package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultKeymapHasDigitsAndOperators(t *testing.T) {
	km := DefaultKeymap()
	if text, ok := km.Lookup("5"); !ok || text != "5" {
		t.Fatalf("digit 5 = %q, %v", text, ok)
	}
	if text, ok := km.Lookup("ADD"); !ok || text != "+" {
		t.Fatalf("ADD = %q, %v", text, ok)
	}
}

func TestLoadKeymapMergesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	content := "[key]\nADD = \"ADD\"\nF1 = \"PRECISION\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	km, err := LoadKeymap(path)
	if err != nil {
		t.Fatalf("LoadKeymap: %v", err)
	}
	if text, ok := km.Lookup("F1"); !ok || text != "PRECISION" {
		t.Fatalf("F1 = %q, %v", text, ok)
	}
	if text, ok := km.Lookup("0"); !ok || text != "0" {
		t.Fatalf("default binding 0 lost after merge: %q, %v", text, ok)
	}
}

func TestLoadKeymapEmptyPathReturnsDefault(t *testing.T) {
	km, err := LoadKeymap("")
	if err != nil {
		t.Fatalf("LoadKeymap: %v", err)
	}
	if _, ok := km.Lookup("ENTER"); !ok {
		t.Fatalf("expected default ENTER binding")
	}
}
