package logger

import (
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %s", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected output stderr, got %s", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Level: "debug", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg = Config{Level: "verbose", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg = Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	cfg := &Config{Level: "nonsense", Format: "json", Output: "stderr"}
	log := New(cfg, "vmapi")
	if log == nil {
		t.Fatal("expected logger")
	}
	if log.Service() != "vmapi" {
		t.Errorf("expected service vmapi, got %s", log.Service())
	}
}

func TestLogger_WithComponent(t *testing.T) {
	log := NewDefault("sapi").WithComponent("discovery")
	if log == nil {
		t.Fatal("expected logger")
	}
	if log.Service() != "sapi" {
		t.Error("component tagging should preserve service")
	}
}

func TestOrDefault(t *testing.T) {
	log := NewDefault("cnapi")
	if got := OrDefault(log, "other"); got != log {
		t.Error("OrDefault should return the provided logger")
	}
	if got := OrDefault(nil, "cnapi"); got == nil || got.Service() != "cnapi" {
		t.Error("OrDefault should build a default logger for nil")
	}
}

func TestFields(t *testing.T) {
	m := Fields(FieldService, "napi", FieldAttempt, 3)
	if m[FieldService] != "napi" {
		t.Errorf("expected napi, got %v", m[FieldService])
	}
	if m[FieldAttempt] != 3 {
		t.Errorf("expected 3, got %v", m[FieldAttempt])
	}

	// Odd trailing value is dropped.
	m = Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("expected 1 entry, got %d", len(m))
	}
}
