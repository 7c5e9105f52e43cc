package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Input.Delimiter != "," {
		t.Errorf("Delimiter = %q, want \",\"", cfg.Input.Delimiter)
	}
	if cfg.Output.Path != DefaultOutputPath {
		t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, DefaultOutputPath)
	}
	if cfg.Output.Format != "raw" {
		t.Errorf("Output.Format = %q, want raw", cfg.Output.Format)
	}
	if !cfg.Strict.SingleSourceEnabled() || !cfg.Strict.RequireFullTraversalEnabled() {
		t.Error("strict checks must default to enabled")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults must validate, got %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	const body = `
input:
  delimiter: ";"
  validate_alphabet: true
output:
  path: out/genome.txt
  format: fasta
strict:
  single_source: false
metrics:
  addr: ":9191"
`
	path := filepath.Join(t.TempDir(), "seqasm.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Input.Delimiter != ";" {
		t.Errorf("Delimiter = %q, want \";\"", cfg.Input.Delimiter)
	}
	if !cfg.Input.ValidateAlphabet {
		t.Error("ValidateAlphabet = false, want true")
	}
	if cfg.Output.Path != "out/genome.txt" || cfg.Output.Format != "fasta" {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Strict.SingleSourceEnabled() {
		t.Error("single_source: false must disable the strict check")
	}
	if !cfg.Strict.RequireFullTraversalEnabled() {
		t.Error("unset require_full_traversal must stay enabled")
	}
	if cfg.Metrics.Addr != ":9191" {
		t.Errorf("Metrics.Addr = %q, want :9191", cfg.Metrics.Addr)
	}
	// Unset fields fall back to defaults.
	if cfg.Watch.DebounceMs != 250 {
		t.Errorf("DebounceMs = %d, want default 250", cfg.Watch.DebounceMs)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("input: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Input.Delimiter = ",,"
	cfg.Output.Format = "xml"
	cfg.Watch.DebounceMs = -1

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"input.delimiter", "output.format", "watch.debounce_ms"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}
