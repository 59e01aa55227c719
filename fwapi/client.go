package fwapi

import (
	"context"
	"time"

	"github.com/mhalicki/tritonkit/discovery"
	"github.com/mhalicki/tritonkit/httpclient"
	"github.com/mhalicki/tritonkit/logger"
	"github.com/mhalicki/tritonkit/resilience"
	"github.com/mhalicki/tritonkit/triton"
)

// Config carries the settings for an FWAPI client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Auth    *httpclient.AuthConfig
	TLS     *httpclient.TLSConfig
	Retry   resilience.RetryPolicy
	Logger  *logger.Logger
}

// Client talks to an FWAPI instance.
type Client struct {
	http *httpclient.Client
}

// New creates an FWAPI client.
func New(cfg Config) (*Client, error) {
	hc, err := httpclient.New(httpclient.Config{
		Service: triton.ServiceFWAPI,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Auth:    cfg.Auth,
		TLS:     cfg.TLS,
		Retry:   cfg.Retry,
		Logger:  cfg.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// NewDiscovery wraps a shared discovery backend with FWAPI-scoped status
// bookkeeping.
func NewDiscovery(inner discovery.Discovery) *discovery.StatusProxy {
	return discovery.NewStatusProxyFor(inner, triton.ServiceFWAPI)
}

// ListRules lists firewall rules matching the given filters.
func (c *Client) ListRules(ctx context.Context, params *ListRulesParams) ([]Rule, error) {
	return httpclient.GetJSON[[]Rule](ctx, c.http, "/rules", params.values())
}

// GetRule fetches a firewall rule by UUID.
func (c *Client) GetRule(ctx context.Context, uuid triton.RuleUUID) (*Rule, error) {
	rule, err := httpclient.GetJSON[Rule](ctx, c.http, "/rules/"+uuid.String(), nil)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// CreateRule creates a firewall rule.
func (c *Client) CreateRule(ctx context.Context, req *CreateRuleRequest) (*Rule, error) {
	rule, err := httpclient.PostJSON[Rule](ctx, c.http, "/rules", nil, req)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// UpdateRule applies the set fields of req to an existing rule.
func (c *Client) UpdateRule(ctx context.Context, uuid triton.RuleUUID, req *UpdateRuleRequest) (*Rule, error) {
	rule, err := httpclient.PutJSON[Rule](ctx, c.http, "/rules/"+uuid.String(), nil, req)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// DeleteRule removes a firewall rule.
func (c *Client) DeleteRule(ctx context.Context, uuid triton.RuleUUID) error {
	return httpclient.Delete(ctx, c.http, "/rules/"+uuid.String(), nil)
}
