// Package napi provides a typed client for the Triton NAPI service, which
// manages networks, network pools, and NICs.
package napi
