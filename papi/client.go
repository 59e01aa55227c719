package papi

import (
	"context"
	"time"

	"github.com/mhalicki/tritonkit/discovery"
	"github.com/mhalicki/tritonkit/httpclient"
	"github.com/mhalicki/tritonkit/logger"
	"github.com/mhalicki/tritonkit/resilience"
	"github.com/mhalicki/tritonkit/triton"
)

// Config carries the settings for a PAPI client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Auth    *httpclient.AuthConfig
	TLS     *httpclient.TLSConfig
	Retry   resilience.RetryPolicy
	Logger  *logger.Logger
}

// Client talks to a PAPI instance.
type Client struct {
	http *httpclient.Client
}

// New creates a PAPI client.
func New(cfg Config) (*Client, error) {
	hc, err := httpclient.New(httpclient.Config{
		Service: triton.ServicePAPI,
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

// NewDiscovery wraps a shared discovery backend with PAPI-scoped status
// bookkeeping.
func NewDiscovery(inner discovery.Discovery) *discovery.StatusProxy {
	return discovery.NewStatusProxyFor(inner, triton.ServicePAPI)
}

// ListPackages lists packages matching the given filters.
func (c *Client) ListPackages(ctx context.Context, params *ListPackagesParams) ([]Package, error) {
	return httpclient.GetJSON[[]Package](ctx, c.http, "/packages", params.values())
}

// GetPackage fetches a package by UUID.
func (c *Client) GetPackage(ctx context.Context, uuid triton.PackageUUID) (*Package, error) {
	pkg, err := httpclient.GetJSON[Package](ctx, c.http, "/packages/"+uuid.String(), nil)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// CreatePackage creates a new package.
func (c *Client) CreatePackage(ctx context.Context, req *CreatePackageRequest) (*Package, error) {
	pkg, err := httpclient.PostJSON[Package](ctx, c.http, "/packages", nil, req)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// UpdatePackage applies the set fields of req to an existing package.
func (c *Client) UpdatePackage(ctx context.Context, uuid triton.PackageUUID, req *UpdatePackageRequest) (*Package, error) {
	pkg, err := httpclient.PutJSON[Package](ctx, c.http, "/packages/"+uuid.String(), nil, req)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// DeletePackage removes a package.
func (c *Client) DeletePackage(ctx context.Context, uuid triton.PackageUUID) error {
	return httpclient.Delete(ctx, c.http, "/packages/"+uuid.String(), nil)
}
