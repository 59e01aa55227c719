// Package sapi is the client for SAPI, the Triton Services API. SAPI is the
// directory of record for applications, services, and instances, and this
// package doubles as the backing implementation of service discovery: the
// Discovery type resolves service names to endpoint URLs through a TTL cache
// with static fallback.
package sapi
