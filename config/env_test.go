package config

import (
	"strings"
	"testing"
)

func TestParseEnvDefaults(t *testing.T) {
	var cfg DebugConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.StartLevel != "level1" {
		t.Fatalf("expected default start level level1, got %q", cfg.StartLevel)
	}
	if cfg.Enabled || cfg.SkipMenu {
		t.Fatalf("expected debug switches off, got %+v", cfg)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	var cfg DebugConfig
	t.Setenv("DUALITY_DEBUG", "true")
	t.Setenv("DUALITY_START_LEVEL", "level2")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if !cfg.Enabled || cfg.StartLevel != "level2" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg DebugConfig
	t.Setenv("DUALITY_SKIP_MENU", "not-a-bool")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
