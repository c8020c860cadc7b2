package version

import "fmt"

// Tagline is the application's tagline used in help text
const Tagline = "Keyboard shortcut schemes, kept across upgrades"

// Build information injected at build time via ldflags.
// Version also tags saved scheme groups; a change regenerates the factory scheme.
var (
	Version   = "dev"     // Semantic version or "dev"
	Commit    = "unknown" // Git commit hash
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = "unknown" // Go version used
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("schemer %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
