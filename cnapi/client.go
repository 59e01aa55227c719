package cnapi

import (
	"context"
	"time"

	"github.com/mhalicki/tritonkit/discovery"
	"github.com/mhalicki/tritonkit/httpclient"
	"github.com/mhalicki/tritonkit/logger"
	"github.com/mhalicki/tritonkit/resilience"
	"github.com/mhalicki/tritonkit/triton"
)

// Config carries the settings for a CNAPI client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Auth    *httpclient.AuthConfig
	TLS     *httpclient.TLSConfig
	Retry   resilience.RetryPolicy
	Logger  *logger.Logger
}

// Client talks to a CNAPI instance.
type Client struct {
	http *httpclient.Client
}

// New creates a CNAPI client.
func New(cfg Config) (*Client, error) {
	hc, err := httpclient.New(httpclient.Config{
		Service: triton.ServiceCNAPI,
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

// NewDiscovery wraps a shared discovery backend with CNAPI-scoped status
// bookkeeping.
func NewDiscovery(inner discovery.Discovery) *discovery.StatusProxy {
	return discovery.NewStatusProxyFor(inner, triton.ServiceCNAPI)
}

// ListServers lists compute nodes matching the given filters.
func (c *Client) ListServers(ctx context.Context, params *ListServersParams) ([]Server, error) {
	return httpclient.GetJSON[[]Server](ctx, c.http, "/servers", params.values())
}

// GetServer fetches a single compute node by UUID.
func (c *Client) GetServer(ctx context.Context, uuid triton.ServerUUID) (*Server, error) {
	server, err := httpclient.GetJSON[Server](ctx, c.http, "/servers/"+uuid.String(), nil)
	if err != nil {
		return nil, err
	}
	return &server, nil
}

// UpdateServer applies operator settings to a compute node.
func (c *Client) UpdateServer(ctx context.Context, uuid triton.ServerUUID, req *UpdateServerRequest) (*Server, error) {
	server, err := httpclient.PostJSON[Server](ctx, c.http, "/servers/"+uuid.String(), nil, req)
	if err != nil {
		return nil, err
	}
	return &server, nil
}

// SetupServer starts first-boot setup of an unsetup compute node. The
// returned task tracks progress.
func (c *Client) SetupServer(ctx context.Context, uuid triton.ServerUUID, req *SetupServerRequest) (*Task, error) {
	if req == nil {
		req = &SetupServerRequest{}
	}
	task, err := httpclient.PutJSON[Task](ctx, c.http, "/servers/"+uuid.String()+"/setup", nil, req)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// RebootServer reboots a compute node.
func (c *Client) RebootServer(ctx context.Context, uuid triton.ServerUUID, req *RebootServerRequest) (*Task, error) {
	if req == nil {
		req = &RebootServerRequest{}
	}
	task, err := httpclient.PostJSON[Task](ctx, c.http, "/servers/"+uuid.String()+"/reboot", nil, req)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks lists cn-agent tasks matching the given filters.
func (c *Client) ListTasks(ctx context.Context, params *ListTasksParams) ([]Task, error) {
	return httpclient.GetJSON[[]Task](ctx, c.http, "/tasks", params.values())
}

// GetTask fetches a cn-agent task by id.
func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	task, err := httpclient.GetJSON[Task](ctx, c.http, "/tasks/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &task, nil
}
