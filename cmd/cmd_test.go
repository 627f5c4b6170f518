package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"print('hi')", "print('hi')"},
		{"x = 1\ny = 2", "x = 1"},
		{"", ""},
		{strings.Repeat("a", 80), strings.Repeat("a", 57) + "..."},
		{strings.Repeat("é", 70), strings.Repeat("é", 57) + "..."},
	}
	for _, tt := range tests {
		if got := firstLine(tt.in); got != tt.want {
			t.Errorf("firstLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSeedOrClock(t *testing.T) {
	if got := seedOrClock(42); got != 42 {
		t.Errorf("seedOrClock(42) = %d", got)
	}
	if seedOrClock(0) == 0 {
		t.Error("expected a clock-derived seed for 0")
	}
}

func TestCommandsRegistered(t *testing.T) {
	have := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}
	for _, name := range []string{"serve", "init", "snapshot", "highlight", "mcp", "term", "launches", "version"} {
		if !have[name] {
			t.Errorf("missing command %q", name)
		}
	}
}

func TestHighlightCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.py")
	if err := os.WriteFile(src, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := filepath.Join(dir, "missing.yml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"highlight", "--config", cfg, src})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("highlight: %v", err)
	}
	if !strings.Contains(out.String(), `class="hl-`) {
		t.Errorf("expected highlighted markup, got %s", out.String())
	}

	out.Reset()
	rootCmd.SetArgs([]string{"highlight", "--config", cfg, "--css"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("highlight --css: %v", err)
	}
	if !strings.Contains(out.String(), ".hl-") {
		t.Errorf("expected stylesheet, got %s", out.String())
	}
}
