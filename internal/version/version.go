package version

import "github.com/fatih/color"

// Version information for the tokdump CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// String returns the version line shown by --version.
func String(colored bool) string {
	v := Version
	if v == "" {
		v = "dev"
	}
	if colored {
		c := color.New(color.FgGreen, color.Bold)
		c.EnableColor()
		v = c.Sprint(v)
	}
	if GitCommit != "" {
		v += " (" + GitCommit + ")"
	}
	if BuildDate != "" {
		v += " built " + BuildDate
	}
	return v
}
