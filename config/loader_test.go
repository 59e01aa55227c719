package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "triton.yml", `
sapi_url: http://sapi.coal.example.com
sapi_key: topsecret
max_retries: 5
discovery:
  enabled: true
  cache_ttl: 2m
  services:
    vmapi:
      url: http://vmapi.coal.example.com
`)

	cfg, err := Load(WithConfigFile(file), WithEnvFile(filepath.Join(dir, "nonexistent.env")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SAPIURL != "http://sapi.coal.example.com" {
		t.Errorf("unexpected sapi_url: %s", cfg.SAPIURL)
	}
	if cfg.SAPIKey != "topsecret" {
		t.Errorf("unexpected sapi_key: %s", cfg.SAPIKey)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("unexpected max_retries: %d", cfg.MaxRetries)
	}
	if cfg.Discovery.CacheTTL != 2*time.Minute {
		t.Errorf("unexpected cache_ttl: %v", cfg.Discovery.CacheTTL)
	}
	if cfg.Discovery.Services.VMAPI == nil || cfg.Discovery.Services.VMAPI.URL != "http://vmapi.coal.example.com" {
		t.Errorf("static vmapi endpoint not loaded: %+v", cfg.Discovery.Services.VMAPI)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "triton.yml", "sapi_url: http://from-file.example.com\n")

	t.Setenv("TRITON_SAPI_URL", "http://from-env.example.com")

	cfg, err := Load(WithConfigFile(file), WithEnvFile(filepath.Join(dir, "nonexistent.env")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SAPIURL != "http://from-env.example.com" {
		t.Errorf("env should override file, got %s", cfg.SAPIURL)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	env := writeFile(t, dir, ".env", "TRITON_SAPI_URL=http://from-dotenv.example.com\n")

	t.Setenv("TRITON_SAPI_URL", "") // ensure the process env does not mask the file
	os.Unsetenv("TRITON_SAPI_URL")

	cfg, err := Load(WithEnvFile(env), WithConfigFile(filepath.Join(dir, "nonexistent.yml")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SAPIURL != "http://from-dotenv.example.com" {
		t.Errorf("unexpected sapi_url: %s", cfg.SAPIURL)
	}
}

func TestLoad_ExplicitDiscoveryDisable(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "triton.yml", `
sapi_url: http://sapi.coal.example.com
discovery:
  enabled: false
`)

	cfg, err := Load(WithConfigFile(file), WithEnvFile(filepath.Join(dir, "nonexistent.env")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Discovery.Enabled {
		t.Error("explicit enabled: false must not be overridden by defaults")
	}
}

func TestLoad_ExplicitZeroRetryAttempts(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "triton.yml", `
sapi_url: http://sapi.coal.example.com
discovery:
  retry_attempts: 0
`)

	cfg, err := Load(WithConfigFile(file), WithEnvFile(filepath.Join(dir, "nonexistent.env")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Discovery.RetryAttempts != 0 {
		t.Errorf("explicit retry_attempts: 0 must not be promoted to the default, got %d", cfg.Discovery.RetryAttempts)
	}
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "triton.yml", "max_retries: 3\n")

	if _, err := Load(WithConfigFile(file), WithEnvFile(filepath.Join(dir, "nonexistent.env"))); err == nil {
		t.Fatal("expected validation error for missing sapi_url")
	}
}
