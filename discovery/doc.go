// Package discovery defines the service discovery contract shared by the
// Triton clients: the Discovery interface, the Status bookkeeping that every
// implementation reports, and a StatusProxy that scopes a shared discovery
// engine to a single service.
package discovery
