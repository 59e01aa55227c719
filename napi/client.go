package napi

import (
	"context"
	"time"

	"github.com/mhalicki/tritonkit/discovery"
	"github.com/mhalicki/tritonkit/httpclient"
	"github.com/mhalicki/tritonkit/logger"
	"github.com/mhalicki/tritonkit/resilience"
	"github.com/mhalicki/tritonkit/triton"
)

// Config carries the settings for a NAPI client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Auth    *httpclient.AuthConfig
	TLS     *httpclient.TLSConfig
	Retry   resilience.RetryPolicy
	Logger  *logger.Logger
}

// Client talks to a NAPI instance.
type Client struct {
	http *httpclient.Client
}

// New creates a NAPI client.
func New(cfg Config) (*Client, error) {
	hc, err := httpclient.New(httpclient.Config{
		Service: triton.ServiceNAPI,
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

// NewDiscovery wraps a shared discovery backend with NAPI-scoped status
// bookkeeping.
func NewDiscovery(inner discovery.Discovery) *discovery.StatusProxy {
	return discovery.NewStatusProxyFor(inner, triton.ServiceNAPI)
}

// ListNetworks lists networks matching the given filters.
func (c *Client) ListNetworks(ctx context.Context, params *ListNetworksParams) ([]Network, error) {
	return httpclient.GetJSON[[]Network](ctx, c.http, "/networks", params.values())
}

// GetNetwork fetches a network by UUID.
func (c *Client) GetNetwork(ctx context.Context, uuid triton.NetworkUUID) (*Network, error) {
	network, err := httpclient.GetJSON[Network](ctx, c.http, "/networks/"+uuid.String(), nil)
	if err != nil {
		return nil, err
	}
	return &network, nil
}

// CreateNetwork creates a new network.
func (c *Client) CreateNetwork(ctx context.Context, req *CreateNetworkRequest) (*Network, error) {
	network, err := httpclient.PostJSON[Network](ctx, c.http, "/networks", nil, req)
	if err != nil {
		return nil, err
	}
	return &network, nil
}

// UpdateNetwork applies the set fields of req to an existing network.
func (c *Client) UpdateNetwork(ctx context.Context, uuid triton.NetworkUUID, req *UpdateNetworkRequest) (*Network, error) {
	network, err := httpclient.PutJSON[Network](ctx, c.http, "/networks/"+uuid.String(), nil, req)
	if err != nil {
		return nil, err
	}
	return &network, nil
}

// DeleteNetwork removes a network.
func (c *Client) DeleteNetwork(ctx context.Context, uuid triton.NetworkUUID) error {
	return httpclient.Delete(ctx, c.http, "/networks/"+uuid.String(), nil)
}

// ListNetworkPools lists all network pools.
func (c *Client) ListNetworkPools(ctx context.Context) ([]NetworkPool, error) {
	return httpclient.GetJSON[[]NetworkPool](ctx, c.http, "/network_pools", nil)
}

// GetNetworkPool fetches a network pool by UUID.
func (c *Client) GetNetworkPool(ctx context.Context, uuid string) (*NetworkPool, error) {
	pool, err := httpclient.GetJSON[NetworkPool](ctx, c.http, "/network_pools/"+uuid, nil)
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

// ListNICs lists NICs matching the given filters.
func (c *Client) ListNICs(ctx context.Context, params *ListNICsParams) ([]NIC, error) {
	return httpclient.GetJSON[[]NIC](ctx, c.http, "/nics", params.values())
}

// GetNIC fetches a NIC by MAC address.
func (c *Client) GetNIC(ctx context.Context, mac string) (*NIC, error) {
	nic, err := httpclient.GetJSON[NIC](ctx, c.http, "/nics/"+mac, nil)
	if err != nil {
		return nil, err
	}
	return &nic, nil
}

// CreateNIC registers a NIC.
func (c *Client) CreateNIC(ctx context.Context, nic *NIC) (*NIC, error) {
	created, err := httpclient.PostJSON[NIC](ctx, c.http, "/nics", nil, nic)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateNIC updates a NIC by MAC address.
func (c *Client) UpdateNIC(ctx context.Context, mac string, nic *NIC) (*NIC, error) {
	updated, err := httpclient.PutJSON[NIC](ctx, c.http, "/nics/"+mac, nil, nic)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteNIC removes a NIC by MAC address.
func (c *Client) DeleteNIC(ctx context.Context, mac string) error {
	return httpclient.Delete(ctx, c.http, "/nics/"+mac, nil)
}

// ListIPs lists the address records of a network.
func (c *Client) ListIPs(ctx context.Context, network triton.NetworkUUID) ([]IP, error) {
	return httpclient.GetJSON[[]IP](ctx, c.http, "/networks/"+network.String()+"/ips", nil)
}

// GetIP fetches one address record on a network.
func (c *Client) GetIP(ctx context.Context, network triton.NetworkUUID, ip string) (*IP, error) {
	record, err := httpclient.GetJSON[IP](ctx, c.http, "/networks/"+network.String()+"/ips/"+ip, nil)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateIP mutates an address record.
func (c *Client) UpdateIP(ctx context.Context, network triton.NetworkUUID, ip string, req *UpdateIPRequest) (*IP, error) {
	record, err := httpclient.PutJSON[IP](ctx, c.http, "/networks/"+network.String()+"/ips/"+ip, nil, req)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ReserveIP marks an address reserved so automatic provisioning skips it.
func (c *Client) ReserveIP(ctx context.Context, network triton.NetworkUUID, ip string) (*IP, error) {
	reserved := true
	return c.UpdateIP(ctx, network, ip, &UpdateIPRequest{Reserved: &reserved})
}

// ReleaseIP clears the reservation and assignment of an address.
func (c *Client) ReleaseIP(ctx context.Context, network triton.NetworkUUID, ip string) (*IP, error) {
	reserved := false
	return c.UpdateIP(ctx, network, ip, &UpdateIPRequest{Reserved: &reserved, Unassign: true})
}
