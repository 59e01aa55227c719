// Package version exposes the library version used in user-agent strings.
//
// Version can be overridden at build time:
//
//	go build -ldflags "-X github.com/mhalicki/tritonkit/version.Version=1.2.0"
package version
