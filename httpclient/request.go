package httpclient

import (
	"net/http"
	"net/url"
)

// Request describes an outbound request. Path is joined to the client's base
// URL; Customize runs last and may adjust anything on the built request.
type Request struct {
	// Method is the HTTP method.
	Method string
	// Path is appended to the client's base URL.
	Path string
	// Query are URL query parameters.
	Query url.Values
	// Headers are request-specific headers merged over the client defaults.
	Headers map[string]string
	// Body is the request body: io.Reader, []byte, string, or any value to
	// be JSON-encoded. Reader bodies are buffered before the first attempt
	// so retries re-send the same bytes.
	Body any
	// Customize, when set, is applied to the built *http.Request before each
	// attempt.
	Customize func(*http.Request)
	// Classify, when set, replaces ClassifyResponse for this request.
	Classify ClassifyFunc
}

// Response is the result of a request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers http.Header
	// Body is the raw response body.
	Body []byte
}

// IsSuccess reports whether the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// RequestID returns the request tracing id echoed by the service, if any.
func (r *Response) RequestID() string {
	return r.Headers.Get("X-Request-Id")
}
