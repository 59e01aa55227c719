// Package papi provides a typed client for the Triton PAPI service, which
// manages provisioning packages.
package papi
