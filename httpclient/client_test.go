package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mhalicki/tritonkit/errors"
	"github.com/mhalicki/tritonkit/logger"
	"github.com/mhalicki/tritonkit/resilience"
	"github.com/mhalicki/tritonkit/triton"
)

func fastRetry(retries int) resilience.RetryPolicy {
	return resilience.RetryPolicy{
		MaxRetries:        retries,
		InitialDelay:      time.Millisecond,
		MaxDelay:          5 * time.Millisecond,
		BackoffMultiplier: 2,
	}
}

func newTestClient(t *testing.T, baseURL string, cfg Config) *Client {
	t.Helper()
	cfg.BaseURL = baseURL
	if cfg.Service == "" {
		cfg.Service = triton.ServiceVMAPI
	}
	if !cfg.Retry.HasRetries() {
		cfg.Retry = fastRetry(3)
	}
	cfg.Logger = logger.Nop()
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestClient_SuccessFirstAttempt(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("X-Request-Id", "req-1")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{})
	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/vms"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if resp.RequestID() != "req-1" {
		t.Errorf("expected request id echo, got %q", resp.RequestID())
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("expected 1 call, got %d", n)
	}
}

func TestClient_RetriesOn503ThenSucceeds(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{})
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/vms"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Errorf("expected 3 calls, got %d", n)
	}
}

func TestClient_ExhaustsAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{Retry: fastRetry(2)})
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/vms"})
	if !errors.IsServiceUnavailable(err) {
		t.Fatalf("expected service unavailable, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Errorf("expected MaxRetries+1 = 3 calls, got %d", n)
	}
}

func TestClient_ZeroRetriesSingleAttempt(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := New(Config{
		Service: triton.ServiceVMAPI,
		BaseURL: srv.URL,
		Retry:   fastRetry(0),
		Logger:  logger.Nop(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/vms"})
	if !errors.IsServiceUnavailable(err) {
		t.Fatalf("expected service unavailable, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("MaxRetries 0 must disable retries: expected 1 call, got %d", n)
	}
}

func TestClient_ReaderBodyReplayedOnRetry(t *testing.T) {
	var calls int32
	var mu sync.Mutex
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(data))
		mu.Unlock()
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodPut,
		Path:   "/images/x/file",
		Body:   strings.NewReader("image bits"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bodies) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(bodies))
	}
	for i, body := range bodies {
		if body != "image bits" {
			t.Errorf("attempt %d sent %q, want full body", i, body)
		}
	}
}

func TestClient_PerRequestClassifier(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{})
	resp, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/vms/maybe",
		Classify: func(service string, status int, body []byte) *errors.TritonError {
			if status == http.StatusNotFound {
				return nil
			}
			return ClassifyResponse(service, status, body)
		},
	})
	if err != nil {
		t.Fatalf("classifier must accept the 404, got %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected the raw 404 response, got %d", resp.StatusCode)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("accepted response must not be retried, got %d calls", n)
	}
}

func TestClient_NoRetryOn404(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"ResourceNotFound","message":"vm not found"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{})
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/vms/nope"})
	if !errors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !strings.Contains(err.Error(), "vm not found") {
		t.Errorf("expected service message in error, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("404 must not be retried, got %d calls", n)
	}
}

func TestClient_RetriesOn429(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/vms"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Errorf("expected retry after 429, got %d calls", n)
	}
}

func TestClient_ConnectionRefusedRetried(t *testing.T) {
	// Reserve a port and close it so connections are refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c := newTestClient(t, addr, Config{Retry: fastRetry(1)})
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/vms"})
	if !errors.IsServiceUnavailable(err) {
		t.Fatalf("expected service unavailable, got %v", err)
	}
}

func TestClient_Headers(t *testing.T) {
	var gotUA, gotKey, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotKey = r.Header.Get("X-Api-Key")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{
		Service: triton.ServiceSAPI,
		Auth:    APIKeyAuth("secret"),
	})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/services"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(gotUA, "tritonkit-sapi/") {
		t.Errorf("unexpected user agent: %s", gotUA)
	}
	if gotKey != "secret" {
		t.Errorf("expected api key header, got %q", gotKey)
	}
	if gotAccept != "application/json" {
		t.Errorf("expected JSON accept header, got %q", gotAccept)
	}
}

func TestClient_BasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "admin" || pass != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{Auth: BasicAuth("admin", "hunter2")})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_PathJoin(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/", Config{})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "vms/abc"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/vms/abc" {
		t.Errorf("expected /vms/abc, got %s", gotPath)
	}
}

func TestClient_QueryAndCustomize(t *testing.T) {
	var gotQuery url.Values
	var gotVersion string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotVersion = r.Header.Get("Accept-Version")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{})
	q := url.Values{"state": {"running"}}
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/vms",
		Query:  q,
		Customize: func(r *http.Request) {
			r.Header.Set("Accept-Version", "2.0.0")
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery.Get("state") != "running" {
		t.Errorf("query not propagated: %v", gotQuery)
	}
	if gotVersion != "2.0.0" {
		t.Errorf("customize not applied: %q", gotVersion)
	}
}

func TestClient_ContextCancelStopsRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	c := newTestClient(t, srv.URL, Config{Retry: resilience.RetryPolicy{
		MaxRetries:        5,
		InitialDelay:      100 * time.Millisecond,
		MaxDelay:          time.Second,
		BackoffMultiplier: 2,
	}})

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_, err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/vms"})
	if err == nil {
		t.Fatal("expected error")
	}
	if n := atomic.LoadInt32(&calls); n >= 6 {
		t.Errorf("cancellation should stop retries early, got %d calls", n)
	}
}

func TestClient_CircuitBreakerOpenFailsFast(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{
		Retry: fastRetry(1),
		CircuitBreaker: &resilience.CircuitBreakerConfig{
			Name:        "vmapi",
			MaxFailures: 2,
			Timeout:     time.Minute,
		},
	})

	// First call trips the breaker (2 attempts, 2 failures).
	_, _ = c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/vms"})
	before := atomic.LoadInt32(&calls)

	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/vms"})
	if !errors.IsServiceUnavailable(err) {
		t.Fatalf("expected service unavailable, got %v", err)
	}
	if errors.IsRetryable(err) {
		t.Error("open-circuit error must not be retryable")
	}
	if atomic.LoadInt32(&calls) != before {
		t.Error("open breaker must not reach the server")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Service: triton.ServiceVMAPI}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); !errors.IsConfig(err) {
		t.Errorf("expected config error for missing base URL, got %v", err)
	}

	cfg.BaseURL = "ftp://example.com"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unsupported scheme")
	}

	cfg.BaseURL = "http://vmapi.local"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfig_DefaultTimeoutFromService(t *testing.T) {
	cfg := Config{Service: triton.ServiceIMGAPI, BaseURL: "http://imgapi.local"}
	cfg.ApplyDefaults()
	if cfg.Timeout != 60*time.Second {
		t.Errorf("expected imgapi 60s default, got %v", cfg.Timeout)
	}
}
