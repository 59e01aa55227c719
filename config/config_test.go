package config

import (
	"testing"
	"time"

	"github.com/mhalicki/tritonkit/errors"
)

func validConfig() ClientConfig {
	cfg := DefaultClientConfig()
	cfg.SAPIURL = "http://sapi.coal.example.com"
	return cfg
}

func TestClientConfig_Defaults(t *testing.T) {
	cfg := DefaultClientConfig()

	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("expected 3 retries, got %d", cfg.MaxRetries)
	}
	if !cfg.Discovery.Enabled {
		t.Error("discovery should default to enabled")
	}
	if cfg.Discovery.CacheTTL != 5*time.Minute {
		t.Errorf("expected 5m TTL, got %v", cfg.Discovery.CacheTTL)
	}
	if cfg.Discovery.RetryAttempts != 3 {
		t.Errorf("expected 3 retry attempts, got %d", cfg.Discovery.RetryAttempts)
	}
}

func TestClientConfig_Validate(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.SAPIURL = ""
	if err := cfg.Validate(); !errors.IsConfig(err) {
		t.Errorf("expected config error for missing sapi_url, got %v", err)
	}

	cfg = validConfig()
	cfg.SAPIURL = "not a url"
	if err := cfg.Validate(); !errors.IsConfig(err) {
		t.Errorf("expected config error for bad sapi_url, got %v", err)
	}

	cfg = validConfig()
	cfg.Discovery.CacheTTL = 2 * time.Hour
	if err := cfg.Validate(); !errors.IsConfig(err) {
		t.Errorf("expected config error for oversized TTL, got %v", err)
	}
}

func TestDiscoveryConfig_ExplicitDisableSurvivesDefaults(t *testing.T) {
	var d DiscoveryConfig
	d.SetEnabled(false)
	d.ApplyDefaults()
	if d.Enabled {
		t.Error("explicit disable must survive ApplyDefaults")
	}
}

func TestDiscoveryConfig_ExplicitZeroRetriesSurvivesDefaults(t *testing.T) {
	var d DiscoveryConfig
	d.SetRetryAttempts(0)
	d.ApplyDefaults()
	if d.RetryAttempts != 0 {
		t.Errorf("explicit retry_attempts 0 must survive ApplyDefaults, got %d", d.RetryAttempts)
	}

	var unset DiscoveryConfig
	unset.ApplyDefaults()
	if unset.RetryAttempts != 3 {
		t.Errorf("unset retry_attempts should default to 3, got %d", unset.RetryAttempts)
	}
}

func TestServiceEndpoints_FallbackMap(t *testing.T) {
	eps := ServiceEndpoints{
		VMAPI: &ServiceEndpoint{URL: "http://vmapi.local"},
		NAPI:  &ServiceEndpoint{URL: "http://napi.local"},
	}
	m := eps.FallbackMap()

	if len(m) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m))
	}
	if m["vmapi"][0] != "http://vmapi.local" {
		t.Errorf("unexpected vmapi fallback: %v", m["vmapi"])
	}
	if _, ok := m["cnapi"]; ok {
		t.Error("unset services must not appear in the fallback map")
	}
}

func TestServiceEndpoints_Validate(t *testing.T) {
	eps := ServiceEndpoints{PAPI: &ServiceEndpoint{URL: "not a url"}}
	if err := eps.Validate(); !errors.IsConfig(err) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestUFDSConfig(t *testing.T) {
	cfg := UFDSConfig{BindDN: "cn=admin, o=smartdc", BindPassword: "secret"}
	cfg.ApplyDefaults()
	if cfg.BaseDN != "ou=users, o=smartdc" {
		t.Errorf("unexpected default base DN: %s", cfg.BaseDN)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	missing := UFDSConfig{BindDN: "cn=admin"}
	if err := missing.Validate(); !errors.IsConfig(err) {
		t.Errorf("expected config error for missing password, got %v", err)
	}
}
