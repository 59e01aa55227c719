package discovery

import (
	"context"
	"sync"

	"github.com/mhalicki/tritonkit/triton"
)

// StatusProxy scopes a shared Discovery to one service. It delegates lookups
// to the wrapped implementation while keeping its own Status, so each service
// client can report discovery health independently of its siblings.
type StatusProxy struct {
	inner       Discovery
	serviceName string

	mu     sync.RWMutex
	status Status
}

var _ Discovery = (*StatusProxy)(nil)

// NewStatusProxy creates a proxy for the given service name.
func NewStatusProxy(inner Discovery, serviceName string) *StatusProxy {
	return &StatusProxy{inner: inner, serviceName: serviceName}
}

// NewStatusProxyFor creates a proxy for a known Triton service.
func NewStatusProxyFor(inner Discovery, service triton.Service) *StatusProxy {
	return NewStatusProxy(inner, service.String())
}

// ServiceName returns the service this proxy is scoped to.
func (p *StatusProxy) ServiceName() string { return p.serviceName }

// DiscoverService delegates to the wrapped Discovery and records the outcome
// in the proxy's own status.
func (p *StatusProxy) DiscoverService(ctx context.Context, serviceName string) ([]string, error) {
	endpoints, err := p.inner.DiscoverService(ctx, serviceName)

	p.mu.Lock()
	if err != nil {
		p.status.RecordError(err.Error(), serviceName)
	} else {
		p.status.RecordSuccess(len(endpoints))
	}
	p.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return endpoints, nil
}

// DiscoverAllServices resolves the proxy's own service. A scoped proxy only
// ever cares about one name; "all" means "mine".
func (p *StatusProxy) DiscoverAllServices(ctx context.Context) ([]string, error) {
	return p.DiscoverService(ctx, p.serviceName)
}

// Status returns a snapshot of the proxy's own bookkeeping, not the wrapped
// implementation's.
func (p *StatusProxy) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status.Clone()
}

// ClearCache resets only the proxy's own cache counters. The wrapped
// Discovery keeps its cache; other proxies sharing it are unaffected.
func (p *StatusProxy) ClearCache() {
	p.mu.Lock()
	p.status.CacheHits = 0
	p.status.CacheMisses = 0
	p.mu.Unlock()
}
