// Package version reports twsfmt build information.
//
// Release builds set the variables via ldflags:
//
//	go build -ldflags "-X github.com/rickgao/tws-tools/internal/version.Version=1.0.0 \
//	                   -X github.com/rickgao/tws-tools/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/rickgao/tws-tools/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Builds made with "go install module@version" fall back to the module version
// recorded in the binary.
package version

import "runtime/debug"

// Build-time variables (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Resolved returns Version, or the main module version when Version was not set.
func Resolved() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// String returns a formatted version string.
func String() string {
	return Resolved() + " (" + Commit + ") built " + BuildTime
}
