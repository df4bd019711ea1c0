// Package version exposes the build identity shown by tock --version.
package version

import "fmt"

// Stamped at build time via -ldflags "-X".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String formats the version, commit, and build date for display.
func String() string {
	return fmt.Sprintf("%s (commit: %s, date: %s)", Version, GitCommit, BuildDate)
}
