// Package fwapi provides a typed client for the Triton FWAPI service, which
// manages firewall rules.
package fwapi
