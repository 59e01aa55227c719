package triton

import (
	"strings"
	"time"

	"github.com/mhalicki/tritonkit/errors"
)

// Service identifies a Triton DataCenter service.
type Service string

// The known Triton services.
const (
	ServiceVMAPI    Service = "vmapi"
	ServiceCNAPI    Service = "cnapi"
	ServiceNAPI     Service = "napi"
	ServiceIMGAPI   Service = "imgapi"
	ServicePAPI     Service = "papi"
	ServiceFWAPI    Service = "fwapi"
	ServiceSAPI     Service = "sapi"
	ServiceUFDS     Service = "ufds"
	ServiceAmon     Service = "amon"
	ServiceWorkflow Service = "workflow"
)

// KnownServices lists every service in discovery order.
func KnownServices() []Service {
	return []Service{
		ServiceVMAPI,
		ServiceCNAPI,
		ServiceNAPI,
		ServiceIMGAPI,
		ServicePAPI,
		ServiceFWAPI,
		ServiceSAPI,
		ServiceUFDS,
		ServiceAmon,
		ServiceWorkflow,
	}
}

// ParseService parses a service name, case-insensitively.
func ParseService(name string) (Service, error) {
	s := Service(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range KnownServices() {
		if s == known {
			return s, nil
		}
	}
	return "", errors.InvalidRequest("unknown triton service: " + name)
}

// String returns the lowercase service name.
func (s Service) String() string { return string(s) }

// DefaultPort returns the port a service listens on when an instance record
// carries only a hostname. UFDS speaks LDAPS, everything else plain HTTP.
func (s Service) DefaultPort() int {
	if s == ServiceUFDS {
		return 636
	}
	return 80
}

// DefaultScheme returns the URL scheme for synthesized endpoints.
func (s Service) DefaultScheme() string {
	if s == ServiceUFDS {
		return "ldaps"
	}
	return "http"
}

// DefaultTimeout returns the per-request timeout appropriate for the service.
// Image operations move large files, directory lookups should fail fast.
func (s Service) DefaultTimeout() time.Duration {
	switch s {
	case ServiceVMAPI, ServiceCNAPI, ServiceWorkflow:
		return 30 * time.Second
	case ServiceIMGAPI:
		return 60 * time.Second
	case ServiceUFDS:
		return 15 * time.Second
	default:
		return 20 * time.Second
	}
}
