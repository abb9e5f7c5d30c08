package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"rpl/internal/config"
)

func TestSelfTestsAllPass(t *testing.T) {
	cfg := simConfig{memoryKB: 64}
	failed := runSelfTests(selfTests, cfg)
	if len(failed) != 0 {
		t.Fatalf("self tests failed: %v", failed)
	}
}

func TestSelfTestsByNameAll(t *testing.T) {
	tests, err := selfTestsByName("all")
	if err != nil {
		t.Fatalf("selfTestsByName: %v", err)
	}
	if len(tests) != len(selfTests) {
		t.Fatalf("len = %d, want %d", len(tests), len(selfTests))
	}
}

func TestSelfTestsByNameUnknown(t *testing.T) {
	if _, err := selfTestsByName("nope"); err == nil {
		t.Fatalf("expected error for unknown test name")
	}
}

func TestTranslateKeyUnmappedFunctionKey(t *testing.T) {
	km := config.DefaultKeymap()
	if _, ok := translateKey(km, tea.KeyMsg{Type: tea.KeyF1}); ok {
		t.Fatalf("expected F1 unbound by default")
	}
}
