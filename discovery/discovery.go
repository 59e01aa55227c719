package discovery

import "context"

// Discovery resolves Triton service names to endpoint URLs. Implementations
// must be safe for concurrent use.
type Discovery interface {
	// DiscoverService returns the endpoint URLs for the named service.
	DiscoverService(ctx context.Context, serviceName string) ([]string, error)

	// DiscoverAllServices concatenates the endpoints of every service that
	// currently resolves. Best-effort: services that fail are omitted.
	DiscoverAllServices(ctx context.Context) ([]string, error)

	// Status returns a snapshot of the discovery bookkeeping.
	Status() Status

	// ClearCache drops cached endpoints and resets the cache counters.
	ClearCache()
}

// IsServiceAvailable reports whether the service currently resolves.
func IsServiceAvailable(ctx context.Context, d Discovery, serviceName string) bool {
	_, err := d.DiscoverService(ctx, serviceName)
	return err == nil
}
