package imgapi

import (
	"context"
	"net/http"
	"time"

	"github.com/mhalicki/tritonkit/discovery"
	"github.com/mhalicki/tritonkit/httpclient"
	"github.com/mhalicki/tritonkit/logger"
	"github.com/mhalicki/tritonkit/resilience"
	"github.com/mhalicki/tritonkit/triton"
)

// Config carries the settings for an IMGAPI client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Auth    *httpclient.AuthConfig
	TLS     *httpclient.TLSConfig
	Retry   resilience.RetryPolicy
	Logger  *logger.Logger
}

// Client talks to an IMGAPI instance.
type Client struct {
	http *httpclient.Client
}

// New creates an IMGAPI client.
func New(cfg Config) (*Client, error) {
	hc, err := httpclient.New(httpclient.Config{
		Service: triton.ServiceIMGAPI,
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

// NewDiscovery wraps a shared discovery backend with IMGAPI-scoped status
// bookkeeping.
func NewDiscovery(inner discovery.Discovery) *discovery.StatusProxy {
	return discovery.NewStatusProxyFor(inner, triton.ServiceIMGAPI)
}

// ListImages lists image manifests matching the given filters.
func (c *Client) ListImages(ctx context.Context, params *ListImagesParams) ([]Image, error) {
	return httpclient.GetJSON[[]Image](ctx, c.http, "/images", params.values())
}

// GetImage fetches an image manifest by UUID.
func (c *Client) GetImage(ctx context.Context, uuid triton.ImageUUID) (*Image, error) {
	image, err := httpclient.GetJSON[Image](ctx, c.http, "/images/"+uuid.String(), nil)
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// CreateImage creates a new image record in the unactivated state.
func (c *Client) CreateImage(ctx context.Context, req *CreateImageRequest) (*Image, error) {
	image, err := httpclient.PostJSON[Image](ctx, c.http, "/images", nil, req)
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// UpdateImage applies the set fields of req to an existing image.
func (c *Client) UpdateImage(ctx context.Context, uuid triton.ImageUUID, req *UpdateImageRequest) (*Image, error) {
	image, err := httpclient.PutJSON[Image](ctx, c.http, "/images/"+uuid.String(), nil, req)
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// DeleteImage removes an image and its file.
func (c *Client) DeleteImage(ctx context.Context, uuid triton.ImageUUID) error {
	return httpclient.Delete(ctx, c.http, "/images/"+uuid.String(), nil)
}

// PerformAction runs a lifecycle action (activate, disable, enable) on an
// image and returns the updated manifest.
func (c *Client) PerformAction(ctx context.Context, uuid triton.ImageUUID, action ImageAction) (*Image, error) {
	image, err := httpclient.PostJSON[Image](ctx, c.http,
		"/images/"+uuid.String()+"/"+string(action), nil, struct{}{})
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// ActivateImage moves an image with an uploaded file into the active state.
func (c *Client) ActivateImage(ctx context.Context, uuid triton.ImageUUID) (*Image, error) {
	return c.PerformAction(ctx, uuid, ActionActivate)
}

// ImportImage registers an image whose file already lives in storage.
func (c *Client) ImportImage(ctx context.Context, req *ImportImageRequest) (*Image, error) {
	image, err := httpclient.PostJSON[Image](ctx, c.http, "/images/import", nil, req)
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// ExportImage copies an image to a Manta path.
func (c *Client) ExportImage(ctx context.Context, uuid triton.ImageUUID, req *ExportImageRequest) (*Image, error) {
	image, err := httpclient.PostJSON[Image](ctx, c.http, "/images/"+uuid.String()+"/export", nil, req)
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// DownloadImageFile fetches the binary contents of an image file.
func (c *Client) DownloadImageFile(ctx context.Context, uuid triton.ImageUUID) ([]byte, error) {
	resp, err := c.http.Do(ctx, httpclient.Request{
		Method:  http.MethodGet,
		Path:    "/images/" + uuid.String() + "/file",
		Headers: map[string]string{"Accept": "application/octet-stream"},
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// UploadImageFile uploads the binary contents of an image file. contentType
// may be empty.
func (c *Client) UploadImageFile(ctx context.Context, uuid triton.ImageUUID, data []byte, contentType string) error {
	req := httpclient.Request{
		Method: http.MethodPut,
		Path:   "/images/" + uuid.String() + "/file",
		Body:   data,
	}
	if contentType != "" {
		req.Headers = map[string]string{"Content-Type": contentType}
	}
	_, err := c.http.Do(ctx, req)
	return err
}
