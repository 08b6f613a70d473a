package version

import (
	"fmt"
	"runtime/debug"
)

// develVersion is what the toolchain reports for builds outside a module version.
const develVersion = "(devel)"

var (
	// Version is the semantic version of the build. It can be overridden via ldflags.
	Version = ""
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	if Version != "" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == develVersion {
		return "dev"
	}

	return info.Main.Version
}

// Full returns a human-readable version string with commit and build time.
func Full() string {
	return fmt.Sprintf("hearth-version %s, commit: %s, built at: %s", Short(), Commit, BuildTime)
}
