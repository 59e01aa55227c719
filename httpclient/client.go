package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mhalicki/tritonkit/errors"
	"github.com/mhalicki/tritonkit/logger"
	"github.com/mhalicki/tritonkit/resilience"
	"github.com/mhalicki/tritonkit/triton"
)

const tracerName = "github.com/mhalicki/tritonkit/httpclient"

// Client executes requests against one Triton service endpoint with retry,
// classification, and optional circuit breaking.
type Client struct {
	httpClient *http.Client
	config     Config
	cb         *resilience.CircuitBreaker
	log        *logger.Logger
	tracer     trace.Tracer
}

// New creates a client for the configured service endpoint.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	c := &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		log:    logger.OrDefault(cfg.Logger, cfg.Service.String()).WithComponent("httpclient"),
		tracer: otel.Tracer(tracerName),
	}

	if cfg.CircuitBreaker != nil {
		c.cb = resilience.NewCircuitBreaker(*cfg.CircuitBreaker)
	}

	return c, nil
}

// Service returns the Triton service this client is bound to.
func (c *Client) Service() triton.Service { return c.config.Service }

// BaseURL returns the endpoint the client was built with.
func (c *Client) BaseURL() string { return c.config.BaseURL }

// Unwrap returns the underlying *http.Client.
func (c *Client) Unwrap() *http.Client { return c.httpClient }

// Do executes a request with the client's retry policy. Transport failures,
// timeouts, 429 and 5xx responses are retried with capped exponential
// backoff; any other non-2xx response fails the call immediately. The total
// number of attempts is MaxRetries+1.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	// Reader bodies are drained once up front so every attempt sends the
	// same bytes.
	if r, ok := req.Body.(io.Reader); ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Internal(err)
		}
		req.Body = data
	}

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("%s %s %s", c.config.Service, req.Method, req.Path),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("triton.service", c.config.Service.String()),
			attribute.String("http.method", req.Method),
			attribute.String("http.path", req.Path),
		))
	defer span.End()

	policy := c.config.Retry
	var lastErr error

	for attempt := 0; attempt < policy.MaxAttempts(); attempt++ {
		if delay := policy.DelayForAttempt(attempt); delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				span.SetStatus(codes.Error, "cancelled")
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		start := time.Now()
		resp, err := c.doOnce(ctx, req)
		elapsed := time.Since(start)

		span.AddEvent("attempt", trace.WithAttributes(
			attribute.Int("attempt", attempt),
			attribute.Int64("duration_ms", elapsed.Milliseconds()),
		))

		if err == nil {
			c.log.Debug("request succeeded", logger.Fields(
				logger.FieldOperation, req.Method+" "+req.Path,
				logger.FieldAttempt, attempt,
				logger.FieldStatus, resp.StatusCode,
				logger.FieldDuration, elapsed.Milliseconds(),
			))
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
			return resp, nil
		}

		lastErr = err
		c.log.Debug("request failed", logger.Fields(
			logger.FieldOperation, req.Method+" "+req.Path,
			logger.FieldAttempt, attempt,
			logger.FieldError, err.Error(),
			logger.FieldDuration, elapsed.Milliseconds(),
		))

		if ctx.Err() != nil {
			span.SetStatus(codes.Error, "cancelled")
			return nil, ctx.Err()
		}
		if !errors.IsRetryable(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
	}

	terminal := terminalError(c.config.Service.String(), lastErr)
	span.RecordError(terminal)
	span.SetStatus(codes.Error, terminal.Error())
	return nil, terminal
}

// terminalError returns the last retryable error, or a synthesized
// service-unavailable error when nothing structured survived the attempts.
func terminalError(service string, lastErr error) error {
	if lastErr == nil {
		return errors.ServiceUnavailable(service, service+" unavailable after exhausting retries")
	}
	if _, ok := errors.AsTritonError(lastErr); ok {
		return lastErr
	}
	return errors.ServiceUnavailable(service, service+" unavailable after exhausting retries").WithCause(lastErr)
}

// doOnce runs a single attempt through the circuit breaker, if any.
func (c *Client) doOnce(ctx context.Context, req Request) (*Response, error) {
	if c.cb == nil {
		return c.attempt(ctx, req)
	}

	var resp *Response
	err := c.cb.Execute(func() error {
		var attemptErr error
		resp, attemptErr = c.attempt(ctx, req)
		return attemptErr
	})
	if stderrors.Is(err, resilience.ErrCircuitOpen) {
		e := errors.ServiceUnavailable(c.config.Service.String(), c.config.Service.String()+" circuit breaker is open")
		e.Retryable = false
		return nil, e.WithDetail("reason", "circuit_open")
	}
	return resp, err
}

// attempt builds, sends, and classifies one request.
func (c *Client) attempt(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var ne net.Error
		if stderrors.As(err, &ne) && ne.Timeout() {
			return nil, errors.Timeout(c.config.Service.String() + " request timed out").WithCause(err)
		}
		return nil, errors.ServiceUnavailable(c.config.Service.String(), "connection to "+c.config.Service.String()+" failed").WithCause(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.ServiceUnavailable(c.config.Service.String(), "reading response from "+c.config.Service.String()+" failed").WithCause(err)
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	classify := req.Classify
	if classify == nil {
		classify = ClassifyResponse
	}
	if classErr := classify(c.config.Service.String(), resp.StatusCode, body); classErr != nil {
		return result, classErr
	}
	return result, nil
}

// buildRequest assembles the *http.Request for one attempt. The body is
// re-encoded per attempt so retries never reuse a drained reader.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := joinPath(c.config.BaseURL, req.Path)
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, errors.InvalidEndpoint("building request for " + target).WithCause(err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.config.UserAgent)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	c.config.Auth.apply(httpReq)

	if req.Customize != nil {
		req.Customize(httpReq)
	}
	return httpReq, nil
}

func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return bytes.NewReader(b), "", nil
	case string:
		return strings.NewReader(b), "", nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", errors.Internal(err)
		}
		return bytes.NewReader(data), "application/json", nil
	}
}
