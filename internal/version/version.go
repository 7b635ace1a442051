package version

// Build information set by ldflags
var (
	Version = "0.0.0-dev" // Set by goreleaser: -X github.com/arthur-debert/frece/internal/version.Version={{.Version}}
	Commit  = "unknown"   // Set by goreleaser: -X github.com/arthur-debert/frece/internal/version.Commit={{.Commit}}
	Date    = "unknown"   // Set by goreleaser: -X github.com/arthur-debert/frece/internal/version.Date={{.Date}}
)

// String is the user-facing version line.
func String() string {
	return "FRECE v" + Version
}
