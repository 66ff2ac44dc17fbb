// Package constant defines immutable application-level identifiers and build metadata.
package constant

const (
	// Huewheel is the canonical application identifier used for filesystem paths and CLI branding.
	Huewheel = "huewheel"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, injected with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
