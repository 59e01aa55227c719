package resilience

import (
	"context"
	"errors"
	"math"
	"time"
)

// RetryPolicy describes a capped exponential backoff schedule.
//
// Attempt numbering starts at zero: the first attempt is issued immediately
// and attempt n (n >= 1) is preceded by a delay of
// InitialDelay * BackoffMultiplier^(n-1), capped at MaxDelay.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries"`
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration `yaml:"initial_delay" mapstructure:"initial_delay"`
	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration `yaml:"max_delay" mapstructure:"max_delay"`
	// BackoffMultiplier is the exponential growth factor.
	BackoffMultiplier float64 `yaml:"backoff_multiplier" mapstructure:"backoff_multiplier"`
}

// DefaultRetryPolicy returns the policy used by the service clients unless
// overridden: three retries starting at 500ms, doubling up to 5s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:        3,
		InitialDelay:      500 * time.Millisecond,
		MaxDelay:          5 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

// ApplyDefaults replaces an entirely zero policy with the default one and
// fills unset backoff fields. MaxRetries is taken literally on any policy
// that sets at least one field, so MaxRetries: 0 disables retries rather
// than being promoted to the default budget.
func (p *RetryPolicy) ApplyDefaults() {
	if *p == (RetryPolicy{}) {
		*p = DefaultRetryPolicy()
		return
	}
	def := DefaultRetryPolicy()
	if p.InitialDelay <= 0 {
		p.InitialDelay = def.InitialDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = def.MaxDelay
	}
	if p.BackoffMultiplier <= 0 {
		p.BackoffMultiplier = def.BackoffMultiplier
	}
}

// HasRetries reports whether the policy allows any retries at all.
func (p RetryPolicy) HasRetries() bool {
	return p.MaxRetries > 0
}

// MaxAttempts is the total number of attempts including the initial one.
func (p RetryPolicy) MaxAttempts() int {
	if p.MaxRetries < 0 {
		return 1
	}
	return p.MaxRetries + 1
}

// DelayForAttempt returns the delay to wait before the given attempt.
// Attempt 0 is the initial request and has no delay. The result never
// exceeds MaxDelay, including when the exponentiation overflows.
func (p RetryPolicy) DelayForAttempt(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	delay := float64(p.InitialDelay) * math.Pow(p.BackoffMultiplier, float64(attempt-1))
	if delay >= float64(p.MaxDelay) || math.IsInf(delay, 1) || math.IsNaN(delay) {
		return p.MaxDelay
	}
	if delay < 0 {
		return p.MaxDelay
	}
	return time.Duration(delay)
}

// RetryAll retries every error except context cancellation.
func RetryAll(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Retry executes fn until it succeeds, the error is non-retryable, or the
// policy is exhausted. The policy is taken as given: MaxRetries 0 means a
// single attempt. retryIf decides whether an error is worth retrying; nil
// means RetryAll. Returns the last error when all attempts fail.
func Retry[T any](ctx context.Context, policy RetryPolicy, retryIf func(error) bool, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	if retryIf == nil {
		retryIf = RetryAll
	}

	for attempt := 0; attempt < policy.MaxAttempts(); attempt++ {
		if delay := policy.DelayForAttempt(attempt); delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, ctx.Err()
			case <-timer.C:
			}
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !retryIf(err) {
			return zero, err
		}
	}

	return zero, lastErr
}

// RetryFunc is Retry for functions that return only an error.
func RetryFunc(ctx context.Context, policy RetryPolicy, retryIf func(error) bool, fn func() error) error {
	_, err := Retry(ctx, policy, retryIf, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
