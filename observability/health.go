package observability

import (
	"fmt"

	"github.com/mhalicki/tritonkit/discovery"
)

// HealthStatus represents the health state of a component or service.
type HealthStatus string

const (
	HealthStatusUp       HealthStatus = "up"
	HealthStatusDown     HealthStatus = "down"
	HealthStatusDegraded HealthStatus = "degraded"
)

// Health describes the health of an individual component.
type Health struct {
	Name    string            `json:"name"`
	Status  HealthStatus      `json:"status"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// ServiceHealth describes the overall health of a process and its components.
type ServiceHealth struct {
	Service    string       `json:"service"`
	Status     HealthStatus `json:"status"`
	Version    string       `json:"version,omitempty"`
	Components []Health     `json:"components,omitempty"`
}

// NewServiceHealth creates a ServiceHealth with status up.
func NewServiceHealth(service, version string) *ServiceHealth {
	return &ServiceHealth{
		Service: service,
		Status:  HealthStatusUp,
		Version: version,
	}
}

// AddComponent adds a component health result and degrades overall status
// if needed.
func (sh *ServiceHealth) AddComponent(ch Health) {
	sh.Components = append(sh.Components, ch)

	switch ch.Status {
	case HealthStatusDown:
		sh.Status = HealthStatusDown
	case HealthStatusDegraded:
		if sh.Status != HealthStatusDown {
			sh.Status = HealthStatusDegraded
		}
	}
}

// DiscoveryHealth converts a discovery status snapshot into a component
// health. Never attempted reads as down; a last error with services still
// cached reads as degraded.
func DiscoveryHealth(name string, status discovery.Status) Health {
	h := Health{
		Name: name,
		Details: map[string]string{
			"discovered_services": fmt.Sprintf("%d", status.DiscoveredServices),
			"cache_hit_ratio":     fmt.Sprintf("%.2f", status.CacheHitRatio()),
		},
	}

	switch {
	case status.LastDiscoveryAt.IsZero():
		h.Status = HealthStatusDown
		h.Message = "discovery never attempted"
	case status.IsHealthy():
		h.Status = HealthStatusUp
	case status.DiscoveredServices > 0:
		h.Status = HealthStatusDegraded
		h.Message = status.LastError
	default:
		h.Status = HealthStatusDown
		h.Message = status.LastError
	}

	if len(status.FailedServices) > 0 {
		h.Details["failed_services"] = fmt.Sprintf("%d", len(status.FailedServices))
	}
	return h
}
