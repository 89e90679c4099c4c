// Package version reports the build provenance of the belgianlaw binary.
package version

import (
	"fmt"
	"runtime"
)

// Stamped through -ldflags at release time; the defaults identify a
// from-source development build.
var (
	// CommitHash is the git revision the binary was built from.
	CommitHash = "dev"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the release tag, when one exists.
	Version = "dev"
)

// Info bundles the stamped values with the toolchain and platform the
// binary runs on, in the shape the version command prints as JSON.
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get snapshots the build provenance of the running binary.
func Get() Info {
	return Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String formats the provenance as a single line for terminal output.
func (i Info) String() string {
	if i.Version != "dev" {
		return fmt.Sprintf("belgianlaw %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
	}
	return fmt.Sprintf("belgianlaw dev (commit %s, built %s)", i.CommitHash, i.BuildTime)
}

// Short abbreviates the commit hash for log and prompt use.
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
