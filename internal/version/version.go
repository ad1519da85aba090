// Package version reports the build identity of the academia binary.
package version

import "fmt"

// Set at build time with -ldflags "-X github.com/example/academia/internal/version.Commit=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version line shown by --version and doctor.
func String() string {
	return fmt.Sprintf("academia %s (commit: %s, built: %s)", Version, shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
