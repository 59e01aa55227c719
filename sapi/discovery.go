package sapi

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mhalicki/tritonkit/config"
	"github.com/mhalicki/tritonkit/discovery"
	"github.com/mhalicki/tritonkit/errors"
	"github.com/mhalicki/tritonkit/logger"
	"github.com/mhalicki/tritonkit/resilience"
	"github.com/mhalicki/tritonkit/triton"
)

type cachedEntry struct {
	endpoints []string
	fetchedAt time.Time
}

// Discovery resolves service names to endpoints through SAPI, caching
// results for a TTL and falling back to statically configured endpoints when
// SAPI is disabled or unreachable.
//
// The mutex guards only the cache map and status; no network I/O happens
// under it. Concurrent misses for the same key each refresh independently.
type Discovery struct {
	client *Client
	log    *logger.Logger

	mu     sync.RWMutex
	cache  map[string]cachedEntry
	status discovery.Status

	ttl      time.Duration
	timeout  time.Duration
	retry    resilience.RetryPolicy
	fallback map[string][]string
	enabled  bool

	now func() time.Time
}

var _ discovery.Discovery = (*Discovery)(nil)

// NewDiscovery creates a discovery engine backed by the given SAPI client.
func NewDiscovery(client *Client, cfg config.DiscoveryConfig) *Discovery {
	cfg.ApplyDefaults()

	retry := client.retry
	retry.MaxRetries = cfg.RetryAttempts

	return &Discovery{
		client:   client,
		log:      logger.OrDefault(client.log, triton.ServiceSAPI.String()).WithComponent("discovery"),
		cache:    make(map[string]cachedEntry),
		ttl:      cfg.CacheTTL,
		timeout:  cfg.Timeout,
		retry:    retry,
		fallback: cfg.Services.FallbackMap(),
		enabled:  cfg.Enabled,
		now:      time.Now,
	}
}

// DiscoverService resolves the named service. Cache keys are lowercased, so
// "VMAPI" and "vmapi" share an entry.
func (d *Discovery) DiscoverService(ctx context.Context, serviceName string) ([]string, error) {
	key := strings.ToLower(serviceName)

	if !d.enabled {
		if endpoints := d.fallback[key]; len(endpoints) > 0 {
			return endpoints, nil
		}
		return nil, errors.DiscoveryFailed(key,
			"service discovery disabled and no fallback for "+serviceName)
	}

	d.mu.RLock()
	entry, ok := d.cache[key]
	d.mu.RUnlock()

	if ok && d.now().Sub(entry.fetchedAt) <= d.ttl {
		d.mu.Lock()
		d.status.CacheHits++
		d.mu.Unlock()
		return entry.endpoints, nil
	}

	return d.refreshService(ctx, key)
}

// DiscoverAllServices concatenates the endpoints of every known service,
// skipping the ones that fail to resolve.
func (d *Discovery) DiscoverAllServices(ctx context.Context) ([]string, error) {
	var endpoints []string
	for _, service := range triton.KnownServices() {
		discovered, err := d.DiscoverService(ctx, service.String())
		if err != nil {
			continue
		}
		endpoints = append(endpoints, discovered...)
	}
	return endpoints, nil
}

// Status returns a snapshot of the engine's bookkeeping.
func (d *Discovery) Status() discovery.Status {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status.Clone()
}

// ClearCache drops every cached entry and zeroes the hit/miss counters. The
// rest of the status (timestamps, errors, failed services) is history, not
// cache state, and survives.
func (d *Discovery) ClearCache() {
	d.mu.Lock()
	d.cache = make(map[string]cachedEntry)
	d.status.CacheHits = 0
	d.status.CacheMisses = 0
	d.mu.Unlock()
}

// refreshService fetches endpoints from SAPI with the retry schedule, then
// falls back to static endpoints if every attempt failed.
func (d *Discovery) refreshService(ctx context.Context, key string) ([]string, error) {
	service, err := triton.ParseService(key)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < d.retry.MaxAttempts(); attempt++ {
		if delay := d.retry.DelayForAttempt(attempt); delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		endpoints, err := d.fetchOnce(ctx, service)
		if err == nil {
			d.recordSuccess(key, endpoints)
			return endpoints, nil
		}
		lastErr = err

		d.log.Debug("discovery refresh failed", logger.Fields(
			logger.FieldService, key,
			logger.FieldAttempt, attempt,
			logger.FieldError, err.Error(),
		))

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	d.recordError(key, lastErr)

	if endpoints := d.fallback[key]; len(endpoints) > 0 {
		d.log.Info("using fallback endpoints", logger.Fields(logger.FieldService, key))
		return endpoints, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, errors.DiscoveryFailed(key, "failed to discover endpoints for "+key)
}

func (d *Discovery) fetchOnce(ctx context.Context, service triton.Service) ([]string, error) {
	fetchCtx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	return d.client.DiscoverServiceEndpoints(fetchCtx, service)
}

func (d *Discovery) recordSuccess(key string, endpoints []string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cache[key] = cachedEntry{endpoints: endpoints, fetchedAt: d.now()}
	d.status.RecordSuccess(len(endpoints))
	d.status.CacheMisses++

	// A service that recovers leaves the failed list.
	for i, failed := range d.status.FailedServices {
		if failed == key {
			d.status.FailedServices = append(d.status.FailedServices[:i], d.status.FailedServices[i+1:]...)
			break
		}
	}
}

func (d *Discovery) recordError(key string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	message := "discovery failed for " + key
	if err != nil {
		message = err.Error()
	}
	d.status.RecordError(message, key)
}
