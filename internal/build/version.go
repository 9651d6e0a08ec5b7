package build

import "fmt"

// Set at link time with -ldflags "-X github.com/rohmanhakim/recipebox/internal/build.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// FullVersion returns the version with the commit appended as build metadata,
// e.g. "1.0.0+abc123". An unknown commit is left out.
func FullVersion() string {
	if Commit == "" || Commit == "none" {
		return Version
	}
	return Version + "+" + Commit
}

// Describe is the one-line banner printed by the version command.
func Describe(program string) string {
	return fmt.Sprintf("%s %s (built %s)", program, FullVersion(), BuildTime)
}
