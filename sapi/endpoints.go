package sapi

import (
	"fmt"

	"github.com/mhalicki/tritonkit/triton"
)

// extractInstanceEndpoints pulls endpoint URLs out of one instance record.
// Metadata and params are probed for {service}_url, {service}_endpoint, and
// plain url keys. When no key matches, an endpoint is synthesized from the
// instance hostname with the service's default scheme and port.
func extractInstanceEndpoints(service triton.Service, inst *Instance) []string {
	name := service.String()
	keys := []string{name + "_url", name + "_endpoint", "url"}

	var endpoints []string
	add := func(m map[string]any, key string) {
		if value, ok := m[key].(string); ok && value != "" {
			endpoints = append(endpoints, value)
		}
	}
	for _, key := range keys {
		add(inst.Metadata, key)
		add(inst.Params, key)
	}

	if len(endpoints) == 0 && inst.Hostname != "" {
		endpoints = append(endpoints, fmt.Sprintf("%s://%s:%d",
			service.DefaultScheme(), inst.Hostname, service.DefaultPort()))
	}
	return endpoints
}
