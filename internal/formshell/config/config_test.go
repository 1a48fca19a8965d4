package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigHasAdvanceDelay(t *testing.T) {
	if !strings.Contains(DefaultConfigToml, "advance_delay = \"600ms\"") {
		t.Fatalf("expected advance_delay default")
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadFromRoot(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ParsedAdvanceDelay() != 600*time.Millisecond {
		t.Fatalf("unexpected delay %v", cfg.ParsedAdvanceDelay())
	}
	if cfg.Sink.Addr != "127.0.0.1:8787" {
		t.Fatalf("unexpected sink addr %q", cfg.Sink.Addr)
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	root := t.TempDir()
	raw := "endpoint = \"https://example.com/submit\"\nadvance_delay = \"1s\"\n\n[submit]\ntimeout_seconds = 3\n"
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromRoot(root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Endpoint != "https://example.com/submit" {
		t.Fatalf("unexpected endpoint %q", cfg.Endpoint)
	}
	if cfg.ParsedAdvanceDelay() != time.Second {
		t.Fatalf("unexpected delay %v", cfg.ParsedAdvanceDelay())
	}
	if cfg.SubmitTimeout() != 3*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.SubmitTimeout())
	}
}

func TestMalformedDurationFallsBack(t *testing.T) {
	cfg := Config{AdvanceDelay: "soon"}
	if cfg.ParsedAdvanceDelay() != 600*time.Millisecond {
		t.Fatalf("unexpected delay %v", cfg.ParsedAdvanceDelay())
	}
}

func TestGlamourStyle(t *testing.T) {
	if got := (Config{Theme: "light"}).GlamourStyle(); got != "light" {
		t.Fatalf("unexpected style %q", got)
	}
	if got := (Config{Theme: "solarized"}).GlamourStyle(); got != "dark" {
		t.Fatalf("expected fallback to dark, got %q", got)
	}
	if got := Default().GlamourStyle(); got != "dark" {
		t.Fatalf("unexpected default style %q", got)
	}
}
