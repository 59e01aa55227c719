package httpclient

import (
	"net/url"
	"strings"
	"time"

	"github.com/mhalicki/tritonkit/errors"
	"github.com/mhalicki/tritonkit/logger"
	"github.com/mhalicki/tritonkit/resilience"
	"github.com/mhalicki/tritonkit/triton"
	"github.com/mhalicki/tritonkit/version"
)

// Config configures a service-bound HTTP client.
type Config struct {
	// Service is the Triton service this client talks to. Drives the default
	// timeout and the user-agent string.
	Service triton.Service `yaml:"service" mapstructure:"service"`

	// BaseURL is the service endpoint all request paths are joined to.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout is the per-attempt request timeout. Defaults to the service's
	// default timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// UserAgent overrides the default tritonkit-{service}/VERSION string.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Auth configures authentication applied to all requests.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// TLS configures the transport for https endpoints.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Retry is the backoff schedule for retryable failures. The zero value
	// is filled with resilience.DefaultRetryPolicy.
	Retry resilience.RetryPolicy `yaml:"retry" mapstructure:"retry"`

	// CircuitBreaker enables fail-fast behavior when set. Nil disables it.
	CircuitBreaker *resilience.CircuitBreakerConfig `yaml:"-" mapstructure:"-"`

	// Logger receives one debug event per attempt. Nil uses a default.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = c.Service.DefaultTimeout()
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent(c.Service.String())
	}
	c.Retry.ApplyDefaults()
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.Config("httpclient: base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" {
		return errors.InvalidEndpoint("httpclient: malformed base URL: " + c.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.InvalidEndpoint("httpclient: unsupported scheme: " + u.Scheme)
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// joinPath joins a request path onto the base URL, normalizing slashes.
func joinPath(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
