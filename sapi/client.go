package sapi

import (
	"context"
	"sort"

	"github.com/mhalicki/tritonkit/config"
	"github.com/mhalicki/tritonkit/errors"
	"github.com/mhalicki/tritonkit/httpclient"
	"github.com/mhalicki/tritonkit/logger"
	"github.com/mhalicki/tritonkit/resilience"
	"github.com/mhalicki/tritonkit/triton"
)

// AcceptVersion is the SAPI API version this client speaks.
const AcceptVersion = "2.0.0"

// Client talks to a SAPI instance.
type Client struct {
	http         *httpclient.Client
	log          *logger.Logger
	discoveryCfg config.DiscoveryConfig
	retry        resilience.RetryPolicy
}

// NewClient builds a SAPI client from the client configuration.
func NewClient(cfg *config.ClientConfig) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpCfg := httpclient.Config{
		Service: triton.ServiceSAPI,
		BaseURL: cfg.SAPIURL,
		Timeout: cfg.RequestTimeout,
		Headers: map[string]string{"Accept-Version": AcceptVersion},
		Retry:   resilience.RetryPolicy{MaxRetries: cfg.MaxRetries},
	}
	if cfg.SAPIKey != "" {
		httpCfg.Auth = httpclient.APIKeyAuth(cfg.SAPIKey)
	}
	if cfg.TLSSkipVerify || cfg.TLSCACert != "" {
		httpCfg.TLS = &httpclient.TLSConfig{
			SkipVerify: cfg.TLSSkipVerify,
			CAFile:     cfg.TLSCACert,
		}
	}
	httpCfg.Retry.ApplyDefaults()

	log := logger.NewDefault(triton.ServiceSAPI.String())
	httpCfg.Logger = log

	hc, err := httpclient.New(httpCfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:         hc,
		log:          log,
		discoveryCfg: cfg.Discovery,
		retry:        httpCfg.Retry,
	}, nil
}

// HTTP returns the underlying executor, mainly for tests.
func (c *Client) HTTP() *httpclient.Client { return c.http }

// DiscoveryConfig returns the discovery section of the configuration this
// client was built with.
func (c *Client) DiscoveryConfig() config.DiscoveryConfig { return c.discoveryCfg }

// Discovery returns a cached discovery engine backed by this client.
func (c *Client) Discovery() *Discovery {
	return NewDiscovery(c, c.discoveryCfg)
}

// ListApplications lists all SAPI applications.
func (c *Client) ListApplications(ctx context.Context) ([]Application, error) {
	return httpclient.GetJSON[[]Application](ctx, c.http, "/applications", nil)
}

// GetApplication fetches one application by UUID.
func (c *Client) GetApplication(ctx context.Context, uuid triton.AppUUID) (*Application, error) {
	app, err := httpclient.GetJSON[Application](ctx, c.http, "/applications/"+uuid.String(), nil)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListServices lists services, optionally filtered.
func (c *Client) ListServices(ctx context.Context, query *ServiceQuery) ([]Service, error) {
	return httpclient.GetJSON[[]Service](ctx, c.http, "/services", query.values())
}

// GetService fetches one service by UUID.
func (c *Client) GetService(ctx context.Context, uuid triton.ServiceUUID) (*Service, error) {
	svc, err := httpclient.GetJSON[Service](ctx, c.http, "/services/"+uuid.String(), nil)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// ListInstances lists instances, optionally filtered.
func (c *Client) ListInstances(ctx context.Context, query *InstanceQuery) ([]Instance, error) {
	return httpclient.GetJSON[[]Instance](ctx, c.http, "/instances", query.values())
}

// GetInstance fetches one instance by UUID.
func (c *Client) GetInstance(ctx context.Context, uuid triton.InstanceUUID) (*Instance, error) {
	inst, err := httpclient.GetJSON[Instance](ctx, c.http, "/instances/"+uuid.String(), nil)
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

// DiscoverServiceEndpoints resolves the endpoint URLs for a Triton service by
// walking its SAPI services and their instances. The result is deduplicated
// and sorted.
func (c *Client) DiscoverServiceEndpoints(ctx context.Context, service triton.Service) ([]string, error) {
	services, err := c.ListServices(ctx, NewServiceQuery().WithName(service.String()))
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, errors.NotFound("SAPI service " + service.String() + " not found")
	}

	seen := make(map[string]struct{})
	for _, svc := range services {
		instances, err := c.ListInstances(ctx,
			NewInstanceQuery().WithServiceUUID(svc.UUID).IncludeMaster(true))
		if err != nil {
			return nil, err
		}
		for _, inst := range instances {
			for _, endpoint := range extractInstanceEndpoints(service, &inst) {
				seen[endpoint] = struct{}{}
			}
		}
	}

	if len(seen) == 0 {
		return nil, errors.DiscoveryFailed(service.String(),
			"no endpoints discovered for service "+service.String())
	}

	endpoints := make([]string, 0, len(seen))
	for endpoint := range seen {
		endpoints = append(endpoints, endpoint)
	}
	sort.Strings(endpoints)
	return endpoints, nil
}
