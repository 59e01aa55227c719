// Package config loads and validates the client configuration: the SAPI
// endpoint, authentication, discovery behavior, and static fallback
// endpoints. Configuration is read from a YAML file with a TRITON_* env
// overlay, optionally seeded from a .env file.
package config
