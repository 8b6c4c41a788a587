package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	settings, err := Load(WithConfigFile(filepath.Join(t.TempDir(), "missing.yml")))
	if err != nil {
		t.Fatalf("Load with no sources should fall back to defaults: %v", err)
	}
	if settings.Name != "seqkit" {
		t.Errorf("expected default name, got %q", settings.Name)
	}
	if settings.Environment != "development" {
		t.Errorf("expected default environment, got %q", settings.Environment)
	}
	if settings.Logging.Level != "info" {
		t.Errorf("expected default log level, got %q", settings.Logging.Level)
	}
	if settings.Telemetry.SampleRate != 1.0 {
		t.Errorf("expected default sample rate, got %v", settings.Telemetry.SampleRate)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seqkit.yml")
	content := []byte("name: demo\nenvironment: staging\nlogging:\n  level: debug\n  format: json\ntelemetry:\n  enabled: true\n  endpoint: collector:4318\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.Name != "demo" || settings.Environment != "staging" {
		t.Errorf("unexpected settings: %+v", settings)
	}
	if settings.Logging.Level != "debug" || settings.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", settings.Logging)
	}
	if !settings.Telemetry.Enabled || settings.Telemetry.Endpoint != "collector:4318" {
		t.Errorf("unexpected telemetry config: %+v", settings.Telemetry)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	os.Setenv("SEQKIT_LOGGING_LEVEL", "warn")
	defer os.Unsetenv("SEQKIT_LOGGING_LEVEL")

	settings, err := Load(WithConfigFile(filepath.Join(t.TempDir(), "missing.yml")))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.Logging.Level != "warn" {
		t.Errorf("expected env override to win, got %q", settings.Logging.Level)
	}
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seqkit.yml")
	if err := os.WriteFile(path, []byte("environment: prod\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(WithConfigFile(path)); err == nil {
		t.Error("expected validation failure for unknown environment")
	}
}

func TestSettings_Validate_SampleRate(t *testing.T) {
	s := &Settings{}
	s.ApplyDefaults()
	s.Telemetry.SampleRate = 1.5
	if err := s.Validate(); err == nil {
		t.Error("expected sample_rate > 1 to fail validation")
	}
}
