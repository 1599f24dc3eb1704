package libearth

import (
	"fmt"
	"runtime"
)

var (
	// version is set via ldflags during build by GoReleaser
	// For development builds, this will show "dev"
	version = "dev"

	// commit is set via ldflags during build by GoReleaser
	commit = "unknown"

	// buildTime is set via ldflags during build by GoReleaser
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or 'unknown'
// when run from source.
func Commit() string {
	return commit
}

// BuildTime returns the build timestamp in RFC3339 format, or 'unknown'
// when run from source.
func BuildTime() string {
	return buildTime
}

// GoVersion returns the version of the Go runtime the binary was built with.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the User-Agent string to use
func UserAgent() string {
	return fmt.Sprintf("libearth/%s", version)
}

// BuildInfo returns a human-readable summary of all build metadata.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		version, commit, buildTime, GoVersion())
}
