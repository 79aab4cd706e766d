package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"MATERIALS_TEST_PORT" envDefault:"123"`
}

type prefixedTestConfig struct {
	Path   string `env:"TEST_PATH" envDefault:"out.md"`
	Strict bool   `env:"TEST_STRICT"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("MATERIALS_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvWithPrefix(t *testing.T) {
	t.Setenv("MATERIALS_TEST_PATH", "status.md")
	t.Setenv("MATERIALS_TEST_STRICT", "true")
	t.Setenv("TEST_PATH", "unprefixed.md")

	var cfg prefixedTestConfig
	if err := ParseEnvWithPrefix(&cfg, EnvPrefix); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Path != "status.md" {
		t.Fatalf("expected prefixed path, got %q", cfg.Path)
	}
	if !cfg.Strict {
		t.Fatal("expected strict from env")
	}
}

func TestParseEnvWithPrefixError(t *testing.T) {
	t.Setenv("MATERIALS_TEST_STRICT", "maybe")

	var cfg prefixedTestConfig
	err := ParseEnvWithPrefix(&cfg, EnvPrefix)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env MATERIALS_*:") {
		t.Fatalf("expected prefixed error, got %v", err)
	}
}
