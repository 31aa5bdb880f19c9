// Package version carries the build metadata stamped into the adoc binary.
package version

// Overridden at release time with -ldflags "-X ...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
