package discovery

import (
	"slices"
	"time"
)

// Status tracks the health and cache performance of a discovery source.
// The zero value is ready to use.
type Status struct {
	// LastDiscoveryAt is when discovery was last attempted. Zero means never.
	LastDiscoveryAt time.Time `json:"last_discovery_at"`

	// LastSuccessAt is when discovery last succeeded. Zero means never.
	LastSuccessAt time.Time `json:"last_success_at"`

	// LastError is the most recent error message. Empty means none.
	LastError string `json:"last_error,omitempty"`

	// DiscoveredServices is the number of services successfully discovered.
	DiscoveredServices int `json:"discovered_services"`

	// FailedServices lists services that failed discovery, in first-failure
	// order without duplicates.
	FailedServices []string `json:"failed_services,omitempty"`

	// CacheHits counts lookups served from cache.
	CacheHits uint64 `json:"cache_hits"`

	// CacheMisses counts lookups that required a fetch.
	CacheMisses uint64 `json:"cache_misses"`
}

// RecordSuccess marks a successful discovery of count services and clears
// the last error.
func (s *Status) RecordSuccess(count int) {
	now := time.Now()
	s.LastDiscoveryAt = now
	s.LastSuccessAt = now
	s.DiscoveredServices = count
	s.LastError = ""
}

// RecordError marks a failed discovery attempt. A non-empty failedService is
// appended to FailedServices unless already present.
func (s *Status) RecordError(message, failedService string) {
	s.LastDiscoveryAt = time.Now()
	s.LastError = message
	if failedService != "" && !slices.Contains(s.FailedServices, failedService) {
		s.FailedServices = append(s.FailedServices, failedService)
	}
}

// CacheHitRatio returns hits/(hits+misses), or 0.0 with no traffic.
func (s *Status) CacheHitRatio() float64 {
	total := s.CacheHits + s.CacheMisses
	if total == 0 {
		return 0.0
	}
	return float64(s.CacheHits) / float64(total)
}

// IsHealthy reports whether the source has discovered services and the most
// recent attempt did not fail.
func (s *Status) IsHealthy() bool {
	return s.LastError == "" && s.DiscoveredServices > 0
}

// TimeSinceLastSuccess returns the age of the last success, or false if
// discovery never succeeded.
func (s *Status) TimeSinceLastSuccess() (time.Duration, bool) {
	if s.LastSuccessAt.IsZero() {
		return 0, false
	}
	return time.Since(s.LastSuccessAt), true
}

// TimeSinceLastAttempt returns the age of the last attempt, or false if
// discovery was never attempted.
func (s *Status) TimeSinceLastAttempt() (time.Duration, bool) {
	if s.LastDiscoveryAt.IsZero() {
		return 0, false
	}
	return time.Since(s.LastDiscoveryAt), true
}

// Clone returns a deep copy, detaching the FailedServices slice.
func (s *Status) Clone() Status {
	out := *s
	out.FailedServices = slices.Clone(s.FailedServices)
	return out
}
