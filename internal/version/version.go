// Package version holds build metadata injected via ldflags.
package version

//nolint:revive // Overwritten by the release pipeline via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
