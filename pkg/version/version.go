// Package version exposes build-time version information for the collate CLI.
package version

import (
	"fmt"
	"runtime"
)

// These variables are populated at build time using -ldflags.
// Example:
// go build -ldflags "-X 'collate/pkg/version.Version=0.3.0' -X 'collate/pkg/version.Commit=abc1234' -X 'collate/pkg/version.BuildTime=2026-08-25T12:00:00Z'"
var (
	Version   = "dev"     // Semantic version of the binary
	Commit    = "none"    // Git commit hash
	BuildTime = "unknown" // Build timestamp
)

// Info bundles everything the version command prints.
type Info struct {
	Version   string // Semantic version
	GitCommit string // Git commit hash
	BuildTime string // Build timestamp
	GoVersion string // Go runtime version
	Platform  string // OS and architecture
}

// Get returns the version information for the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the single-line form.
// Example output:
// collate version 0.3.0 (commit: abc1234) built at 2026-08-25T12:00:00Z with go1.23.1 on linux/amd64
func (i Info) String() string {
	return fmt.Sprintf(
		"collate version %s (commit: %s) built at %s with %s on %s",
		i.Version,
		i.GitCommit,
		i.BuildTime,
		i.GoVersion,
		i.Platform,
	)
}
