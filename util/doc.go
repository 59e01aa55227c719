// Package util provides small generic helpers shared across the client
// packages: pointer construction for optional request fields and value
// coalescing for configuration defaults.
package util
