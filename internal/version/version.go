package version

// Build information set by ldflags
var (
	Version = "0.1.0"   // Set by goreleaser: -X github.com/arthur-debert/gobtop/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/gobtop/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/gobtop/internal/version.Date={{.Date}}
)

// ProgramName is used for the config header, directory names and the binary.
const ProgramName = "gobtop"
