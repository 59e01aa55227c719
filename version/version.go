package version

import (
	"runtime/debug"
	"strings"
)

// Version is set at build time via -ldflags. Falls back to the module
// version recorded in build info when left at "dev".
var Version = "dev"

// Get returns the effective library version.
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return strings.TrimPrefix(v, "v")
		}
	}
	return Version
}

// UserAgent builds the user-agent string for a service client, in the form
// tritonkit-{service}/{version}.
func UserAgent(service string) string {
	return "tritonkit-" + service + "/" + Get()
}
