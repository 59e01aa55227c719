package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mhalicki/tritonkit/errors"
	"github.com/mhalicki/tritonkit/logger"
)

var validate = validator.New()

// ClientConfig is the top-level configuration for the Triton clients.
type ClientConfig struct {
	// SAPIURL is the base URL of the SAPI instance used for discovery.
	SAPIURL string `yaml:"sapi_url" mapstructure:"sapi_url" validate:"required,url"`

	// SAPIKey is an optional X-Api-Key credential.
	SAPIKey string `yaml:"sapi_key" mapstructure:"sapi_key"`

	// TLSSkipVerify disables server certificate verification.
	TLSSkipVerify bool `yaml:"tls_skip_verify" mapstructure:"tls_skip_verify"`

	// TLSCACert is an optional path to a CA bundle.
	TLSCACert string `yaml:"tls_ca_cert" mapstructure:"tls_ca_cert"`

	// RequestTimeout is the per-attempt timeout for SAPI requests.
	// Defaults to 30s.
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`

	// MaxRetries is the retry budget for SAPI requests. Defaults to 3.
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries" validate:"min=0,max=10"`

	// Discovery configures the cached discovery engine.
	Discovery DiscoveryConfig `yaml:"discovery" mapstructure:"discovery"`

	// UFDS configures the LDAP directory client, when used.
	UFDS *UFDSConfig `yaml:"ufds" mapstructure:"ufds"`

	// Logging configures the shared logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// DefaultClientConfig returns a configuration with every default applied.
// SAPIURL must still be set before use.
func DefaultClientConfig() ClientConfig {
	cfg := ClientConfig{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero-valued fields. Discovery.Enabled defaults to true
// only when the discovery section is entirely unset; an explicit false in a
// config file is respected by the loader.
func (c *ClientConfig) ApplyDefaults() {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 30 * time.Second
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	c.Discovery.ApplyDefaults()
	c.Logging.ApplyDefaults()
}

// Validate checks the configuration, returning a CONFIG_ERROR on failure.
func (c *ClientConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Config("invalid client configuration").WithCause(err)
	}
	if c.RequestTimeout < time.Second || c.RequestTimeout > 5*time.Minute {
		return errors.Config(fmt.Sprintf("request_timeout must be between 1s and 5m (got %s)", c.RequestTimeout))
	}
	if err := c.Discovery.Validate(); err != nil {
		return err
	}
	if c.UFDS != nil {
		if err := c.UFDS.Validate(); err != nil {
			return err
		}
	}
	return c.Logging.Validate()
}

// DiscoveryConfig controls the cached SAPI discovery engine.
type DiscoveryConfig struct {
	// Enabled toggles live discovery. When false, lookups are served from
	// the static Services table only.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// CacheTTL is how long discovered endpoints stay fresh. Defaults to 5m.
	CacheTTL time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`

	// Timeout bounds a single discovery lookup. Defaults to 5s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// RetryAttempts is the number of refresh retries. Defaults to 3; an
	// explicit 0 recorded via SetRetryAttempts disables refresh retries.
	RetryAttempts int `yaml:"retry_attempts" mapstructure:"retry_attempts" validate:"min=0,max=10"`

	// Services are static endpoints used as fallback when discovery is
	// disabled or exhausted.
	Services ServiceEndpoints `yaml:"services" mapstructure:"services"`

	// set and retrySet track which fields were configured explicitly, so
	// ApplyDefaults knows zero from unset.
	set      bool
	retrySet bool
}

// ApplyDefaults fills zero-valued fields. Called once; the first call
// enables discovery unless it was explicitly configured off via SetEnabled.
func (c *DiscoveryConfig) ApplyDefaults() {
	if !c.set {
		c.Enabled = true
		c.set = true
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = 5 * time.Minute
	}
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
	if c.RetryAttempts == 0 && !c.retrySet {
		c.RetryAttempts = 3
	}
}

// SetEnabled records an explicit on/off choice that ApplyDefaults must not
// override.
func (c *DiscoveryConfig) SetEnabled(enabled bool) {
	c.Enabled = enabled
	c.set = true
}

// SetRetryAttempts records an explicit retry budget. Zero stays zero, so a
// configured retry_attempts: 0 yields single-attempt refreshes.
func (c *DiscoveryConfig) SetRetryAttempts(n int) {
	c.RetryAttempts = n
	c.retrySet = true
}

// Validate checks the discovery configuration.
func (c *DiscoveryConfig) Validate() error {
	if c.CacheTTL < time.Second || c.CacheTTL > time.Hour {
		return errors.Config(fmt.Sprintf("discovery.cache_ttl must be between 1s and 1h (got %s)", c.CacheTTL))
	}
	if c.Timeout < time.Second || c.Timeout > time.Minute {
		return errors.Config(fmt.Sprintf("discovery.timeout must be between 1s and 1m (got %s)", c.Timeout))
	}
	if c.RetryAttempts < 0 || c.RetryAttempts > 10 {
		return errors.Config(fmt.Sprintf("discovery.retry_attempts must be between 0 and 10 (got %d)", c.RetryAttempts))
	}
	return c.Services.Validate()
}

// ServiceEndpoint is a static endpoint for one service.
type ServiceEndpoint struct {
	// URL is the service base URL.
	URL string `yaml:"url" mapstructure:"url" validate:"required,url"`

	// Timeout optionally overrides the service's default request timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ServiceEndpoints holds the static endpoints usable as discovery fallback.
type ServiceEndpoints struct {
	VMAPI  *ServiceEndpoint `yaml:"vmapi" mapstructure:"vmapi"`
	CNAPI  *ServiceEndpoint `yaml:"cnapi" mapstructure:"cnapi"`
	NAPI   *ServiceEndpoint `yaml:"napi" mapstructure:"napi"`
	IMGAPI *ServiceEndpoint `yaml:"imgapi" mapstructure:"imgapi"`
	PAPI   *ServiceEndpoint `yaml:"papi" mapstructure:"papi"`
	FWAPI  *ServiceEndpoint `yaml:"fwapi" mapstructure:"fwapi"`
}

// Validate checks each configured endpoint.
func (s *ServiceEndpoints) Validate() error {
	for name, ep := range s.byName() {
		if ep == nil {
			continue
		}
		if err := validate.Struct(ep); err != nil {
			return errors.Config("invalid static endpoint for " + name).WithCause(err)
		}
	}
	return nil
}

// FallbackMap builds the service-name to endpoint-list table used by the
// discovery engine when SAPI is disabled or unreachable.
func (s *ServiceEndpoints) FallbackMap() map[string][]string {
	out := make(map[string][]string)
	for name, ep := range s.byName() {
		if ep != nil && ep.URL != "" {
			out[name] = append(out[name], ep.URL)
		}
	}
	return out
}

func (s *ServiceEndpoints) byName() map[string]*ServiceEndpoint {
	return map[string]*ServiceEndpoint{
		"vmapi":  s.VMAPI,
		"cnapi":  s.CNAPI,
		"napi":   s.NAPI,
		"imgapi": s.IMGAPI,
		"papi":   s.PAPI,
		"fwapi":  s.FWAPI,
	}
}

// UFDSConfig configures the LDAP directory client.
type UFDSConfig struct {
	// URL is the ldaps:// endpoint. Discovered via SAPI when empty.
	URL string `yaml:"url" mapstructure:"url"`

	// BindDN is the admin bind DN.
	BindDN string `yaml:"bind_dn" mapstructure:"bind_dn" validate:"required"`

	// BindPassword is the admin bind password.
	BindPassword string `yaml:"bind_password" mapstructure:"bind_password" validate:"required"`

	// BaseDN is the directory root to search under.
	BaseDN string `yaml:"base_dn" mapstructure:"base_dn"`

	// InsecureSkipVerify disables TLS verification for ldaps connections.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify" mapstructure:"insecure_skip_verify"`
}

// ApplyDefaults fills the default search base.
func (c *UFDSConfig) ApplyDefaults() {
	if c.BaseDN == "" {
		c.BaseDN = "ou=users, o=smartdc"
	}
}

// Validate checks the UFDS configuration.
func (c *UFDSConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Config("invalid ufds configuration").WithCause(err)
	}
	return nil
}
