package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Compile.MinDurationSeconds != 0.1 {
		t.Errorf("min duration = %v, want 0.1", cfg.Compile.MinDurationSeconds)
	}
	if cfg.Compile.Placeholder != "-" {
		t.Errorf("placeholder = %q, want -", cfg.Compile.Placeholder)
	}
	if len(cfg.Compile.Models) != 2 {
		t.Errorf("models = %v, want whisper and nemo", cfg.Compile.Models)
	}
	if cfg.Batch.Workers != 4 {
		t.Errorf("workers = %d, want 4", cfg.Batch.Workers)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `pipeline:
  log_level: debug
paths:
  audio: /data/wav
compile:
  min_duration_seconds: 0.25
  models: [whisper]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pipeline.LogLvl != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Pipeline.LogLvl)
	}
	if cfg.Paths.Audio != "/data/wav" {
		t.Errorf("audio path = %q", cfg.Paths.Audio)
	}
	if cfg.Compile.MinDurationSeconds != 0.25 {
		t.Errorf("min duration = %v, want 0.25", cfg.Compile.MinDurationSeconds)
	}
	if len(cfg.Compile.Models) != 1 || cfg.Compile.Models[0] != "whisper" {
		t.Errorf("models = %v, want [whisper]", cfg.Compile.Models)
	}
	// Untouched keys keep their defaults.
	if cfg.Paths.Outputs != "data/exbs" {
		t.Errorf("outputs path = %q, want the default", cfg.Paths.Outputs)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load accepted a missing explicit config file")
	}
}
