package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetryPolicy_Defaults(t *testing.T) {
	p := DefaultRetryPolicy()
	if p.MaxRetries != 3 {
		t.Errorf("expected 3 retries, got %d", p.MaxRetries)
	}
	if p.InitialDelay != 500*time.Millisecond {
		t.Errorf("expected 500ms initial delay, got %v", p.InitialDelay)
	}
	if p.MaxDelay != 5*time.Second {
		t.Errorf("expected 5s max delay, got %v", p.MaxDelay)
	}
	if p.BackoffMultiplier != 2.0 {
		t.Errorf("expected multiplier 2, got %v", p.BackoffMultiplier)
	}
	if !p.HasRetries() {
		t.Error("default policy should allow retries")
	}
	if p.MaxAttempts() != 4 {
		t.Errorf("expected 4 total attempts, got %d", p.MaxAttempts())
	}
}

func TestRetryPolicy_DelayForAttempt(t *testing.T) {
	p := DefaultRetryPolicy()

	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 0},
		{1, 500 * time.Millisecond},
		{2, 1 * time.Second},
		{3, 2 * time.Second},
		{4, 4 * time.Second},
		{5, 5 * time.Second},  // capped
		{10, 5 * time.Second}, // still capped
	}
	for _, tc := range cases {
		if got := p.DelayForAttempt(tc.attempt); got != tc.want {
			t.Errorf("attempt %d: expected %v, got %v", tc.attempt, tc.want, got)
		}
	}
}

func TestRetryPolicy_DelayMonotonic(t *testing.T) {
	p := RetryPolicy{
		MaxRetries:        10,
		InitialDelay:      100 * time.Millisecond,
		MaxDelay:          3 * time.Second,
		BackoffMultiplier: 1.5,
	}
	prev := time.Duration(-1)
	for attempt := 0; attempt <= 20; attempt++ {
		d := p.DelayForAttempt(attempt)
		if d < prev {
			t.Fatalf("delay decreased at attempt %d: %v < %v", attempt, d, prev)
		}
		if d > p.MaxDelay {
			t.Fatalf("delay %v exceeds cap %v at attempt %d", d, p.MaxDelay, attempt)
		}
		prev = d
	}
}

func TestRetryPolicy_DelaySaturates(t *testing.T) {
	p := RetryPolicy{
		MaxRetries:        3,
		InitialDelay:      time.Second,
		MaxDelay:          30 * time.Second,
		BackoffMultiplier: 10,
	}
	// Large attempt numbers overflow float64 exponentiation; the cap must hold.
	if got := p.DelayForAttempt(10000); got != 30*time.Second {
		t.Errorf("expected cap %v, got %v", 30*time.Second, got)
	}
}

func TestRetryPolicy_ApplyDefaults(t *testing.T) {
	p := RetryPolicy{MaxRetries: 7}
	p.ApplyDefaults()
	if p.MaxRetries != 7 {
		t.Errorf("explicit value overwritten: %d", p.MaxRetries)
	}
	if p.InitialDelay != 500*time.Millisecond || p.MaxDelay != 5*time.Second || p.BackoffMultiplier != 2.0 {
		t.Errorf("defaults not applied: %+v", p)
	}

	var zero RetryPolicy
	zero.ApplyDefaults()
	if zero != DefaultRetryPolicy() {
		t.Errorf("zero policy must become the default: %+v", zero)
	}
}

func TestRetryPolicy_ApplyDefaults_KeepsZeroMaxRetries(t *testing.T) {
	p := RetryPolicy{MaxRetries: 0, InitialDelay: time.Millisecond}
	p.ApplyDefaults()
	if p.MaxRetries != 0 {
		t.Errorf("MaxRetries 0 must survive defaulting, got %d", p.MaxRetries)
	}
	if p.HasRetries() {
		t.Error("policy without retries must report HasRetries false")
	}
	if p.MaxAttempts() != 1 {
		t.Errorf("expected a single attempt, got %d", p.MaxAttempts())
	}
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	policy := RetryPolicy{MaxRetries: 3, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, BackoffMultiplier: 2}

	calls := 0
	result, err := Retry(context.Background(), policy, nil, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" {
		t.Errorf("expected ok, got %s", result)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	policy := RetryPolicy{MaxRetries: 2, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond, BackoffMultiplier: 2}

	calls := 0
	lastErr := errors.New("still down")
	_, err := Retry(context.Background(), policy, nil, func() (int, error) {
		calls++
		return 0, lastErr
	})
	if !errors.Is(err, lastErr) {
		t.Errorf("expected last error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected MaxRetries+1 = 3 calls, got %d", calls)
	}
}

func TestRetry_ZeroRetriesMeansSingleAttempt(t *testing.T) {
	policy := RetryPolicy{MaxRetries: 0, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffMultiplier: 2}

	calls := 0
	_, err := Retry(context.Background(), policy, nil, func() (int, error) {
		calls++
		return 0, errors.New("always down")
	})
	if err == nil {
		t.Fatal("expected the failure to surface")
	}
	if calls != 1 {
		t.Errorf("MaxRetries 0 must disable retries: expected 1 call, got %d", calls)
	}
}

func TestRetry_NonRetryableStopsImmediately(t *testing.T) {
	policy := DefaultRetryPolicy()
	fatal := errors.New("bad request")

	calls := 0
	_, err := Retry(context.Background(), policy, func(err error) bool { return false }, func() (int, error) {
		calls++
		return 0, fatal
	})
	if !errors.Is(err, fatal) {
		t.Errorf("expected fatal error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	policy := RetryPolicy{MaxRetries: 5, InitialDelay: 50 * time.Millisecond, MaxDelay: time.Second, BackoffMultiplier: 2}

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := Retry(ctx, policy, nil, func() (int, error) {
		calls++
		return 0, errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if calls == 0 {
		t.Error("expected at least the initial attempt")
	}
}

func TestRetryAll(t *testing.T) {
	if RetryAll(context.Canceled) {
		t.Error("context.Canceled should not be retried")
	}
	if RetryAll(context.DeadlineExceeded) {
		t.Error("context.DeadlineExceeded should not be retried")
	}
	if !RetryAll(errors.New("anything else")) {
		t.Error("ordinary errors should be retried")
	}
}

func TestRetryFunc(t *testing.T) {
	policy := RetryPolicy{MaxRetries: 1, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffMultiplier: 2}

	calls := 0
	err := RetryFunc(context.Background(), policy, nil, func() error {
		calls++
		if calls == 1 {
			return errors.New("once")
		}
		return nil
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}
