package discovery

import (
	"context"
	"testing"

	"github.com/mhalicki/tritonkit/errors"
	"github.com/mhalicki/tritonkit/triton"
)

// fakeDiscovery resolves from a fixed table and records the names asked for.
type fakeDiscovery struct {
	endpoints map[string][]string
	asked     []string
	status    Status
}

func (f *fakeDiscovery) DiscoverService(ctx context.Context, serviceName string) ([]string, error) {
	f.asked = append(f.asked, serviceName)
	if eps, ok := f.endpoints[serviceName]; ok {
		return eps, nil
	}
	return nil, errors.DiscoveryFailed(serviceName, "no endpoints for "+serviceName)
}

func (f *fakeDiscovery) DiscoverAllServices(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(f.endpoints))
	for name := range f.endpoints {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeDiscovery) Status() Status { return f.status.Clone() }
func (f *fakeDiscovery) ClearCache()    { f.status.CacheHits, f.status.CacheMisses = 0, 0 }

func TestStatusProxy_RecordsOwnStatus(t *testing.T) {
	engine := &fakeDiscovery{endpoints: map[string][]string{
		"vmapi": {"http://vmapi.local"},
	}}
	proxy := NewStatusProxyFor(engine, triton.ServiceVMAPI)

	eps, err := proxy.DiscoverService(context.Background(), "vmapi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(eps) != 1 || eps[0] != "http://vmapi.local" {
		t.Errorf("unexpected endpoints: %v", eps)
	}

	status := proxy.Status()
	if !status.IsHealthy() {
		t.Error("expected healthy proxy status")
	}
	if status.DiscoveredServices != 1 {
		t.Errorf("expected 1 discovered, got %d", status.DiscoveredServices)
	}
}

func TestStatusProxy_RecordsFailure(t *testing.T) {
	engine := &fakeDiscovery{endpoints: map[string][]string{}}
	proxy := NewStatusProxy(engine, "cnapi")

	_, err := proxy.DiscoverService(context.Background(), "cnapi")
	if !errors.IsDiscoveryFailed(err) {
		t.Fatalf("expected discovery failure, got %v", err)
	}

	status := proxy.Status()
	if status.IsHealthy() {
		t.Error("expected unhealthy status")
	}
	if len(status.FailedServices) != 1 || status.FailedServices[0] != "cnapi" {
		t.Errorf("unexpected failed services: %v", status.FailedServices)
	}
}

func TestStatusProxy_Independence(t *testing.T) {
	engine := &fakeDiscovery{endpoints: map[string][]string{
		"vmapi": {"http://vmapi.local"},
	}}
	healthy := NewStatusProxy(engine, "vmapi")
	broken := NewStatusProxy(engine, "imgapi")

	_, _ = healthy.DiscoverService(context.Background(), "vmapi")
	_, _ = broken.DiscoverService(context.Background(), "imgapi")

	healthyStatus := healthy.Status()
	if !healthyStatus.IsHealthy() {
		t.Error("vmapi proxy should be healthy")
	}
	brokenStatus := broken.Status()
	if brokenStatus.IsHealthy() {
		t.Error("imgapi proxy should be unhealthy")
	}
	if n := len(healthy.Status().FailedServices); n != 0 {
		t.Errorf("vmapi proxy polluted by sibling: %d failed services", n)
	}
}

func TestStatusProxy_DiscoverAllResolvesOwnService(t *testing.T) {
	engine := &fakeDiscovery{endpoints: map[string][]string{
		"napi": {"http://napi.local"},
	}}
	proxy := NewStatusProxy(engine, "napi")

	if _, err := proxy.DiscoverAllServices(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(engine.asked) != 1 || engine.asked[0] != "napi" {
		t.Errorf("expected lookup of own service only, got %v", engine.asked)
	}
}

func TestStatusProxy_ClearCacheResetsOwnCountersOnly(t *testing.T) {
	engine := &fakeDiscovery{
		endpoints: map[string][]string{"papi": {"http://papi.local"}},
		status:    Status{CacheHits: 10, CacheMisses: 2},
	}
	proxy := NewStatusProxy(engine, "papi")

	proxy.ClearCache()

	if got := proxy.Status(); got.CacheHits != 0 || got.CacheMisses != 0 {
		t.Errorf("proxy counters not reset: %+v", got)
	}
	if got := engine.Status(); got.CacheHits != 10 {
		t.Error("engine cache counters must be untouched by proxy ClearCache")
	}
}

func TestIsServiceAvailable(t *testing.T) {
	engine := &fakeDiscovery{endpoints: map[string][]string{
		"fwapi": {"http://fwapi.local"},
	}}
	if !IsServiceAvailable(context.Background(), engine, "fwapi") {
		t.Error("expected fwapi available")
	}
	if IsServiceAvailable(context.Background(), engine, "ghost") {
		t.Error("expected ghost unavailable")
	}
}
