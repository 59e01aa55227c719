package ufds

import (
	"net/url"
	"time"

	"github.com/mhalicki/tritonkit/config"
	"github.com/mhalicki/tritonkit/errors"
	"github.com/mhalicki/tritonkit/logger"
)

// Default directory layout of a Triton datacenter.
const (
	DefaultBaseDN         = "o=smartdc"
	DefaultUserBaseDN     = "ou=users, o=smartdc"
	defaultFilterTemplate = "(&(objectClass=person)(|(uid={login})(login={login})))"
)

// Config carries the settings for a UFDS client.
type Config struct {
	// URL is the directory endpoint, ldap:// or ldaps://.
	URL string

	BindDN       string
	BindPassword string

	// BaseDN roots all searches. UserBaseDN and GroupBaseDN narrow user
	// and group searches; both default to BaseDN.
	BaseDN      string
	UserBaseDN  string
	GroupBaseDN string

	// UserFilterTemplate is the search filter for user lookups; {login}
	// is replaced with the escaped login.
	UserFilterTemplate string

	TLSSkipVerify bool
	TLSCACert     string

	ConnectTimeout   time.Duration
	OperationTimeout time.Duration

	Logger *logger.Logger
}

// FromClientConfig builds a UFDS client configuration from the shared client
// configuration and a directory URL, typically one produced by service
// discovery.
func FromClientConfig(rawURL string, cfg *config.UFDSConfig) Config {
	out := Config{URL: rawURL}
	if cfg != nil {
		out.BindDN = cfg.BindDN
		out.BindPassword = cfg.BindPassword
		out.BaseDN = cfg.BaseDN
		out.TLSSkipVerify = cfg.InsecureSkipVerify
	}
	return out
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.BaseDN == "" {
		c.BaseDN = DefaultBaseDN
	}
	if c.UserBaseDN == "" {
		if c.BaseDN == DefaultBaseDN {
			c.UserBaseDN = DefaultUserBaseDN
		} else {
			c.UserBaseDN = c.BaseDN
		}
	}
	if c.GroupBaseDN == "" {
		c.GroupBaseDN = c.BaseDN
	}
	if c.UserFilterTemplate == "" {
		c.UserFilterTemplate = defaultFilterTemplate
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = 10 * time.Second
	}
	if c.OperationTimeout <= 0 {
		c.OperationTimeout = 10 * time.Second
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.Config("ufds: URL is required")
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return errors.InvalidEndpoint("ufds: invalid URL " + c.URL).WithCause(err)
	}
	if u.Scheme != "ldap" && u.Scheme != "ldaps" {
		return errors.InvalidEndpoint("ufds: URL scheme must be ldap or ldaps, got " + u.Scheme)
	}
	if c.BindDN == "" {
		return errors.Config("ufds: BindDN is required")
	}
	if c.BindPassword == "" {
		return errors.Config("ufds: BindPassword is required")
	}
	if _, err := ParseDN(c.BaseDN); err != nil {
		return errors.Config("ufds: invalid BaseDN").WithCause(err)
	}
	return nil
}
