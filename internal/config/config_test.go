package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port int `env:"PORTFOLIO_TEST_PORT" envDefault:"123"`
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
	t.Setenv("PORTFOLIO_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Reveal.IntroDuration != 6*time.Second || cfg.Reveal.ImageTimeout != 8*time.Second {
		t.Fatalf("reveal = %+v", cfg.Reveal)
	}
	if cfg.SMTP.Host != "smtp.gmail.com" || cfg.SMTP.Port != "587" {
		t.Fatalf("smtp = %+v", cfg.SMTP)
	}
	if cfg.Admin.Username != "admin" {
		t.Fatalf("admin username = %q", cfg.Admin.Username)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("REVEAL_INTRO_DURATION", "2500ms")
	t.Setenv("REVEAL_STRICT", "true")
	t.Setenv("SMTP_USER", "me")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("ADMIN_USERNAME", "root")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Reveal.IntroDuration != 2500*time.Millisecond || !cfg.Reveal.Strict {
		t.Fatalf("reveal = %+v", cfg.Reveal)
	}
	if !cfg.SMTP.Configured() {
		t.Fatal("expected smtp configured")
	}
	if cfg.Admin.Username != "root" {
		t.Fatalf("admin username = %q", cfg.Admin.Username)
	}
}

func TestLoadRejectsNonPositiveDurations(t *testing.T) {
	t.Setenv("REVEAL_IMAGE_TIMEOUT", "0s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestAdminDefaultsDetected(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Admin.UsingDefaults() {
		t.Fatal("built-in credentials not detected")
	}

	t.Setenv("ADMIN_USERNAME", "marina")
	t.Setenv("ADMIN_PASSWORD", "correct-horse")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Admin.UsingDefaults() {
		t.Fatal("custom credentials reported as defaults")
	}

	if !(AdminConfig{Username: "marina", Password: DefaultAdminPassword}).UsingDefaults() {
		t.Fatal("default password alone should count")
	}
}
