package vmapi

import (
	"context"
	"time"

	"github.com/mhalicki/tritonkit/discovery"
	"github.com/mhalicki/tritonkit/httpclient"
	"github.com/mhalicki/tritonkit/logger"
	"github.com/mhalicki/tritonkit/resilience"
	"github.com/mhalicki/tritonkit/triton"
)

// Config carries the settings for a VMAPI client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Auth    *httpclient.AuthConfig
	TLS     *httpclient.TLSConfig
	Retry   resilience.RetryPolicy
	Logger  *logger.Logger
}

// Client talks to a VMAPI instance.
type Client struct {
	http *httpclient.Client
}

// New creates a VMAPI client.
func New(cfg Config) (*Client, error) {
	hc, err := httpclient.New(httpclient.Config{
		Service: triton.ServiceVMAPI,
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

// NewDiscovery wraps a shared discovery backend with VMAPI-scoped status
// bookkeeping.
func NewDiscovery(inner discovery.Discovery) *discovery.StatusProxy {
	return discovery.NewStatusProxyFor(inner, triton.ServiceVMAPI)
}

// ListVMs lists VMs matching the given filters.
func (c *Client) ListVMs(ctx context.Context, params *ListVMsParams) ([]VM, error) {
	return httpclient.GetJSON[[]VM](ctx, c.http, "/vms", params.values())
}

// GetVM fetches a single VM by UUID.
func (c *Client) GetVM(ctx context.Context, uuid triton.InstanceUUID) (*VM, error) {
	vm, err := httpclient.GetJSON[VM](ctx, c.http, "/vms/"+uuid.String(), nil)
	if err != nil {
		return nil, err
	}
	return &vm, nil
}

// CreateVM provisions a new VM. VMAPI queues the work and returns the job
// tracking it.
func (c *Client) CreateVM(ctx context.Context, req *CreateVMRequest) (*Job, error) {
	job, err := httpclient.PostJSON[Job](ctx, c.http, "/vms", nil, req)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateVM applies the set fields of req to an existing VM.
func (c *Client) UpdateVM(ctx context.Context, uuid triton.InstanceUUID, req *UpdateVMRequest) (*Job, error) {
	job, err := httpclient.PostJSON[Job](ctx, c.http, "/vms/"+uuid.String(), nil, req)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteVM destroys a VM and returns the job tracking the teardown.
func (c *Client) DeleteVM(ctx context.Context, uuid triton.InstanceUUID) (*Job, error) {
	job, err := httpclient.DeleteJSON[Job](ctx, c.http, "/vms/"+uuid.String(), nil)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// ListSnapshots lists the snapshots of a VM.
func (c *Client) ListSnapshots(ctx context.Context, uuid triton.InstanceUUID) ([]Snapshot, error) {
	return httpclient.GetJSON[[]Snapshot](ctx, c.http, "/vms/"+uuid.String()+"/snapshots", nil)
}

// CreateSnapshot takes a snapshot of a VM.
func (c *Client) CreateSnapshot(ctx context.Context, uuid triton.InstanceUUID, req *CreateSnapshotRequest) (*SnapshotActionResponse, error) {
	if req == nil {
		req = &CreateSnapshotRequest{}
	}
	resp, err := httpclient.PostJSON[SnapshotActionResponse](ctx, c.http, "/vms/"+uuid.String()+"/snapshots", nil, req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteSnapshot removes a named snapshot from a VM.
func (c *Client) DeleteSnapshot(ctx context.Context, uuid triton.InstanceUUID, name string) (*SnapshotActionResponse, error) {
	resp, err := httpclient.DeleteJSON[SnapshotActionResponse](ctx, c.http, "/vms/"+uuid.String()+"/snapshots/"+name, nil)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// BatchAction applies a lifecycle action to a set of VMs in one call.
func (c *Client) BatchAction(ctx context.Context, req *BatchRequest) (*BatchResponse, error) {
	if req.Concurrency <= 0 {
		req.Concurrency = DefaultBatchConcurrency
	}
	resp, err := httpclient.PostJSON[BatchResponse](ctx, c.http, "/vms/actions", nil, req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListJobs lists workflow jobs, optionally filtered.
func (c *Client) ListJobs(ctx context.Context, params *ListJobsParams) ([]Job, error) {
	return httpclient.GetJSON[[]Job](ctx, c.http, "/jobs", params.values())
}
