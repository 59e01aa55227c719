package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/mhalicki/tritonkit/errors"
)

// RequestOption adjusts a single request.
type RequestOption func(*Request)

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithCustomize sets a request modifier applied before each attempt.
func WithCustomize(fn func(*http.Request)) RequestOption {
	return func(r *Request) { r.Customize = fn }
}

// GetJSON performs a GET request and decodes the JSON response into T.
func GetJSON[T any](ctx context.Context, c *Client, path string, query url.Values, opts ...RequestOption) (T, error) {
	return doJSON[T](ctx, c, http.MethodGet, path, query, nil, opts...)
}

// PostJSON performs a POST with a JSON body and decodes the response into T.
func PostJSON[T any](ctx context.Context, c *Client, path string, query url.Values, body any, opts ...RequestOption) (T, error) {
	return doJSON[T](ctx, c, http.MethodPost, path, query, body, opts...)
}

// PutJSON performs a PUT with a JSON body and decodes the response into T.
func PutJSON[T any](ctx context.Context, c *Client, path string, query url.Values, body any, opts ...RequestOption) (T, error) {
	return doJSON[T](ctx, c, http.MethodPut, path, query, body, opts...)
}

// DeleteJSON performs a DELETE request and decodes the response into T.
func DeleteJSON[T any](ctx context.Context, c *Client, path string, query url.Values, opts ...RequestOption) (T, error) {
	return doJSON[T](ctx, c, http.MethodDelete, path, query, nil, opts...)
}

// Delete performs a DELETE request, discarding any response body.
func Delete(ctx context.Context, c *Client, path string, query url.Values, opts ...RequestOption) error {
	req := Request{Method: http.MethodDelete, Path: path, Query: query}
	for _, opt := range opts {
		opt(&req)
	}
	_, err := c.Do(ctx, req)
	return err
}

func doJSON[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any, opts ...RequestOption) (T, error) {
	var data T

	req := Request{Method: method, Path: path, Query: query, Body: body}
	for _, opt := range opts {
		opt(&req)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return data, err
	}

	if len(resp.Body) > 0 && resp.StatusCode != http.StatusNoContent {
		if err := json.Unmarshal(resp.Body, &data); err != nil {
			return data, errors.Parse("decoding "+c.Service().String()+" response for "+path, err)
		}
	}
	return data, nil
}
