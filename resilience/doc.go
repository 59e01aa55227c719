// Package resilience provides the fault-tolerance building blocks shared by
// the Triton service clients.
//
// This package includes:
//   - RetryPolicy: Capped exponential backoff schedule for retried requests
//   - Retry: Generic context-aware retry loop driven by a RetryPolicy
//   - CircuitBreaker: Fails fast when a service is persistently unhealthy
//
// The HTTP client composes these per request:
//
//	policy := resilience.DefaultRetryPolicy()
//	result, err := resilience.Retry(ctx, policy, resilience.RetryAll, func() (*Response, error) {
//	    return client.do(ctx, req)
//	})
package resilience
