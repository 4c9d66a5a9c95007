// Package gntraits holds application-level metadata shared by commands.
package gntraits

var (
	// Version is set by build flags.
	Version = "v0.1.0"
	// Build is the build timestamp, set by build flags.
	Build = "n/a"
)
